package api

import (
	"net/http"

	"grooming-salon/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createdResponse struct {
	ID uuid.UUID `json:"id"`
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func respondCreated(c *gin.Context, location string, id uuid.UUID) {
	c.Header("Location", location+"/"+id.String())
	c.JSON(http.StatusCreated, createdResponse{ID: id})
}
