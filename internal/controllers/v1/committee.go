package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samiti-app/backend/internal/httputil"
	"github.com/samiti-app/backend/internal/models"
)

// RegisterCommitteeRoutes registers the routes for the committee roster with
// the RouterGroup that is passed.
func (co Controller) RegisterCommitteeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetCommittee)
	r.POST("", co.CreateCommitteeMember)

	r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
	r.PATCH("/:id", co.UpdateCommitteeMember)
	r.DELETE("/:id", co.DeleteCommitteeMember)
}

// CommitteeMemberEditable represents all user configurable parameters of a
// committee seat.
type CommitteeMemberEditable struct {
	Name  string `json:"name" example:"Rajendranath Das"`
	Role  string `json:"role" example:"Secretary"`
	Phone string `json:"phone" example:"+91 98300 00000"`
	Photo string `json:"photo"` // Base64 image payload
}

func (editable CommitteeMemberEditable) model() models.CommitteeMember {
	return models.CommitteeMember{
		Name:  editable.Name,
		Role:  editable.Role,
		Phone: editable.Phone,
		Photo: editable.Photo,
	}
}

type CommitteeMemberResponse struct {
	Data  *models.CommitteeMember `json:"data"`
	Error *string                 `json:"error"`
}

type CommitteeListResponse struct {
	Data  []models.CommitteeMember `json:"data"`
	Error *string                  `json:"error"`
}

// @Summary		List committee
// @Description	Returns the committee roster
// @Tags			Committee
// @Produce		json
// @Success		200	{object}	CommitteeListResponse
// @Failure		500	{object}	CommitteeListResponse
// @Router			/v1/committee [get]
func (co Controller) GetCommittee(c *gin.Context) {
	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CommitteeListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CommitteeListResponse{Data: snapshot.Committee})
}

// @Summary		Create committee seat
// @Description	Adds a seat to the committee roster
// @Tags			Committee
// @Accept			json
// @Produce		json
// @Success		201		{object}	CommitteeMemberResponse
// @Failure		400		{object}	CommitteeMemberResponse
// @Param			member	body		CommitteeMemberEditable	true	"Committee member"
// @Router			/v1/committee [post]
func (co Controller) CreateCommitteeMember(c *gin.Context) {
	var editable CommitteeMemberEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CommitteeMemberResponse{Error: &e})
		return
	}

	member, err := co.Ledger.AddCommitteeMember(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CommitteeMemberResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, CommitteeMemberResponse{Data: &member})
}

// @Summary		Update committee seat
// @Description	Replaces a committee seat
// @Tags			Committee
// @Accept			json
// @Produce		json
// @Success		200		{object}	CommitteeMemberResponse
// @Failure		400		{object}	CommitteeMemberResponse
// @Failure		404		{object}	CommitteeMemberResponse
// @Param			id		path		string					true	"ID of the seat"
// @Param			member	body		CommitteeMemberEditable	true	"Committee member"
// @Router			/v1/committee/{id} [patch]
func (co Controller) UpdateCommitteeMember(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CommitteeMemberResponse{Error: &e})
		return
	}

	var editable CommitteeMemberEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), CommitteeMemberResponse{Error: &e})
		return
	}

	member := editable.model()
	member.ID = id

	member, err = co.Ledger.UpdateCommitteeMember(member)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CommitteeMemberResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CommitteeMemberResponse{Data: &member})
}

// @Summary		Delete committee seat
// @Description	Removes a seat from the committee roster
// @Tags			Committee
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the seat"
// @Router			/v1/committee/{id} [delete]
func (co Controller) DeleteCommitteeMember(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.Ledger.RemoveCommitteeMember(id); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
