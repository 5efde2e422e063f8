package request

type RevenueQuery struct {
	Period string `form:"period" binding:"omitempty,oneof=today yesterday last7days last30days thisMonth lastMonth"`
	Start  string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End    string `form:"end" binding:"omitempty,datetime=2006-01-02"`
}
