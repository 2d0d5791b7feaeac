package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samiti-app/backend/internal/httputil"
)

// RegisterYearRoutes registers the routes for fiscal years with the
// RouterGroup that is passed.
func (co Controller) RegisterYearRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetYears)
	r.POST("", co.CreateYear)
}

// YearEditable is the request body for adding a fiscal year.
type YearEditable struct {
	Year string `json:"year" example:"2027"`
}

type YearListResponse struct {
	Data  []string `json:"data"`
	Error *string  `json:"error"`
}

// @Summary		List fiscal years
// @Description	Returns the ordered set of fiscal year labels
// @Tags			Years
// @Produce		json
// @Success		200	{object}	YearListResponse
// @Failure		500	{object}	YearListResponse
// @Router			/v1/years [get]
func (co Controller) GetYears(c *gin.Context) {
	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, YearListResponse{Data: snapshot.Years})
}

// @Summary		Add fiscal year
// @Description	Adds a fiscal year label. The set stays sorted and free of duplicates.
// @Tags			Years
// @Accept			json
// @Produce		json
// @Success		201		{object}	YearListResponse
// @Failure		400		{object}	YearListResponse
// @Param			year	body		YearEditable	true	"Year"
// @Router			/v1/years [post]
func (co Controller) CreateYear(c *gin.Context) {
	var editable YearEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearListResponse{Error: &e})
		return
	}

	years, err := co.Ledger.AddYear(editable.Year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, YearListResponse{Data: years})
}
