package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"

	"github.com/samiti-app/backend/internal/aggregate"
	"github.com/samiti-app/backend/internal/httputil"
	"github.com/samiti-app/backend/internal/models"
)

// RegisterMemberRoutes registers the routes for members with the RouterGroup
// that is passed.
func (co Controller) RegisterMemberRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetMembers)
		r.POST("", co.CreateMember)
	}

	r.OPTIONS("/top", httputil.OptionsGet)
	r.GET("/top", co.GetTopContributors)

	// Member with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetMember)
		r.PATCH("/:id", co.UpdateMember)
		r.DELETE("/:id", co.DeleteMember)
	}
}

// @Summary		List members
// @Description	Returns the member directory
// @Tags			Members
// @Produce		json
// @Success		200		{object}	MemberListResponse
// @Failure		500		{object}	MemberListResponse
// @Param			search	query		string	false	"Search in full name and phone"
// @Router			/v1/members [get]
func (co Controller) GetMembers(c *gin.Context) {
	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemberListResponse{Error: &e})
		return
	}

	members := make([]models.Member, 0, len(snapshot.Members))

	search := strings.ToLower(c.Query("search"))
	for _, member := range snapshot.Members {
		if search != "" && !matchMember(member, search) {
			continue
		}
		members = append(members, member)
	}

	c.JSON(http.StatusOK, MemberListResponse{Data: members})
}

// matchMember reports whether the member matches the lowercased search term.
func matchMember(member models.Member, search string) bool {
	pattern := "*" + search + "*"
	return glob.Glob(pattern, strings.ToLower(member.FullName)) || glob.Glob(pattern, member.Phone)
}

// @Summary		Create member
// @Description	Adds a member to the directory
// @Tags			Members
// @Accept			json
// @Produce		json
// @Success		201		{object}	MemberResponse
// @Failure		400		{object}	MemberResponse
// @Failure		500		{object}	MemberResponse
// @Param			member	body		MemberEditable	true	"Member"
// @Router			/v1/members [post]
func (co Controller) CreateMember(c *gin.Context) {
	var editable MemberEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemberResponse{Error: &e})
		return
	}

	member, err := co.Ledger.AddMember(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemberResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, MemberResponse{Data: &member})
}

// @Summary		Get member
// @Description	Returns a specific member
// @Tags			Members
// @Produce		json
// @Success		200	{object}	MemberResponse
// @Failure		400	{object}	MemberResponse
// @Failure		404	{object}	MemberResponse
// @Param			id	path		string	true	"ID of the member"
// @Router			/v1/members/{id} [get]
func (co Controller) GetMember(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemberResponse{Error: &e})
		return
	}

	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemberResponse{Error: &e})
		return
	}

	for _, member := range snapshot.Members {
		if member.ID == id {
			c.JSON(http.StatusOK, MemberResponse{Data: &member})
			return
		}
	}

	e := "there is no member matching your query"
	c.JSON(http.StatusNotFound, MemberResponse{Error: &e})
}

// @Summary		Update member
// @Description	Replaces the editable fields of a member. Creation timestamps and the contribution ledger are preserved.
// @Tags			Members
// @Accept			json
// @Produce		json
// @Success		200		{object}	MemberResponse
// @Failure		400		{object}	MemberResponse
// @Failure		404		{object}	MemberResponse
// @Param			id		path		string			true	"ID of the member"
// @Param			member	body		MemberEditable	true	"Member"
// @Router			/v1/members/{id} [patch]
func (co Controller) UpdateMember(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemberResponse{Error: &e})
		return
	}

	var editable MemberEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), MemberResponse{Error: &e})
		return
	}

	member := editable.model()
	member.ID = id

	member, err = co.Ledger.UpdateMember(member)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemberResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MemberResponse{Data: &member})
}

// @Summary		Delete member
// @Description	Deletes a member. Transactions referencing the member are kept unchanged.
// @Tags			Members
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the member"
// @Router			/v1/members/{id} [delete]
func (co Controller) DeleteMember(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.Ledger.RemoveMember(id); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Top contributors
// @Description	Returns members ranked by their contribution in the given year, highest first
// @Tags			Members
// @Produce		json
// @Success		200		{object}	ContributorListResponse
// @Failure		400		{object}	ContributorListResponse
// @Param			year	query		string	true	"Fiscal year"
// @Param			limit	query		int		false	"Maximum number of entries. Defaults to 5."
// @Router			/v1/members/top [get]
func (co Controller) GetTopContributors(c *gin.Context) {
	year, err := yearQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContributorListResponse{Error: &e})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContributorListResponse{Error: &e})
		return
	}

	ranked := aggregate.TopContributors(snapshot, year, limit)

	contributors := make([]Contributor, 0, len(ranked))
	for _, member := range ranked {
		contributors = append(contributors, Contributor{
			Member: member,
			Amount: member.Contribution(year),
		})
	}

	c.JSON(http.StatusOK, ContributorListResponse{Data: contributors})
}
