//go:build unit

package notification_test

import (
	"testing"
	"time"

	"grooming-salon/internal/domain/notification"
	"grooming-salon/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	v := notification.Variables{
		Date:         "2024년 1월 2일 (화)",
		Time:         "10:00",
		PetName:      "초코",
		GuardianName: "김보호",
		Services:     "목욕, 부분미용",
		Phone:        "010-1234-5678",
	}

	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "all placeholders",
			body: "{guardian_name}님, {pet_name} {date} {time} 예약 ({services}) 연락처 {phone}{memo}",
			want: "김보호님, 초코 2024년 1월 2일 (화) 10:00 예약 (목욕, 부분미용) 연락처 010-1234-5678",
		},
		{name: "repeated placeholder", body: "{pet_name}/{pet_name}", want: "초코/초코"},
		{name: "unknown placeholder kept", body: "{pet} {pet_name}", want: "{pet} 초코"},
		{name: "plain text", body: "내일 뵙겠습니다", want: "내일 뵙겠습니다"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, notification.Render(tc.body, v))
		})
	}
}

func TestVariablesFor(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	v := notification.VariablesFor(notification.BookingContext{
		Start:        time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC),
		PetName:      "초코",
		GuardianName: "김보호",
		ServiceNames: []string{"목욕", "부분미용"},
		Memo:         ptr.Of("피부 예민"),
	}, loc)

	assert.Equal(t, "2024년 1월 2일 (화)", v.Date)
	assert.Equal(t, "10:00", v.Time)
	assert.Equal(t, "목욕, 부분미용", v.Services)
	assert.Equal(t, "", v.Phone)
	assert.Equal(t, "피부 예민", v.Memo)
}

func TestTemplate(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tpl, err := notification.NewTemplate(" 예약 알림 ", "{pet_name} 예약", now)
	require.NoError(t, err)
	assert.Equal(t, "예약 알림", tpl.Name())
	assert.Equal(t, "초코 예약", tpl.Render(notification.Variables{PetName: "초코"}))

	_, err = notification.NewTemplate("", "body", now)
	assert.ErrorIs(t, err, notification.ErrEmptyName)
	_, err = notification.NewTemplate("name", "  ", now)
	assert.ErrorIs(t, err, notification.ErrEmptyTemplate)

	later := now.Add(time.Hour)
	require.NoError(t, tpl.Update("방문 감사", "감사합니다", later))
	assert.Equal(t, later, tpl.UpdatedAt())
	assert.Equal(t, now, tpl.CreatedAt())
}
