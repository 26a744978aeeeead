package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"visitorbook/internal/form"
	"visitorbook/internal/render"
	"visitorbook/internal/service"
	"visitorbook/internal/session"
)

// RouteIndex is the name of the intake page route, used for redirects.
const RouteIndex = "index"

// IndexHandler serves the intake page of one variant.
type IndexHandler struct {
	variant       form.Variant
	validator     *form.Validator
	registrations service.RegistrationService
	sessions      *session.Manager
	log           *logrus.Logger
	now           func() time.Time
}

// NewIndexHandler creates a handler layer.
func NewIndexHandler(
	variant form.Variant,
	validator *form.Validator,
	registrations service.RegistrationService,
	sessions *session.Manager,
	log *logrus.Logger,
) *IndexHandler {
	return &IndexHandler{
		variant:       variant,
		validator:     validator,
		registrations: registrations,
		sessions:      sessions,
		log:           log,
		now:           time.Now,
	}
}

// WithClock replaces the time source.
func (h *IndexHandler) WithClock(now func() time.Time) *IndexHandler {
	h.now = now
	return h
}

type optionView struct {
	Value    string
	Selected bool
}

type fieldView struct {
	Name     string
	Label    string
	Value    string
	Required bool
	Options  []optionView
	Errors   []string
}

type indexPage struct {
	render.Page
	Action     string
	Fields     []fieldView
	Name       string
	Known      bool
	Values     map[string]string
	RemoteAddr string
	Host       string
	StartedAt  *time.Time
	Now        time.Time
	Elapsed    time.Duration
}

// Show godoc
// @Summary Intake page
// @Description Renders the form together with the values remembered in the session.
// @Tags intake
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {string} string "HTML error page"
// @Router / [get]
func (h *IndexHandler) Show(c echo.Context) error {
	sess := session.FromContext(c)
	if sess == nil {
		return errors.New("session middleware not installed")
	}

	now := h.now()
	dirty := sess.Record.Touch(now)
	flashes := sess.Record.PopFlashes()
	if len(flashes) > 0 {
		dirty = true
	}
	if dirty {
		if err := h.sessions.Save(c.Request().Context(), sess); err != nil {
			return err
		}
	}

	page := h.page(c, sess, now, sess.Record.Values, nil)
	page.Flashes = flashes
	return c.Render(http.StatusOK, h.variant.Template, page)
}

// Submit godoc
// @Summary Submit the intake form
// @Description Validates the form, records the visitor and redirects back to the page.
// @Tags intake
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "Visitor name"
// @Param sobrenome formData string false "Surname (enrollment only)"
// @Param instituicao formData string false "Institution (enrollment only)"
// @Param disciplina formData string false "Subject (enrollment only)" Enums(DSWA5)
// @Success 200 {string} string "HTML page with field errors"
// @Success 302 {string} string "Redirect to the intake page"
// @Failure 500 {string} string "HTML error page"
// @Router / [post]
func (h *IndexHandler) Submit(c echo.Context) error {
	sess := session.FromContext(c)
	if sess == nil {
		return errors.New("session middleware not installed")
	}

	raw := make(map[string]string, len(h.variant.Schema))
	for _, f := range h.variant.Schema {
		raw[f.Name] = c.FormValue(f.Name)
	}

	values, err := h.validator.Validate(h.variant.Schema, raw)
	if err != nil {
		var fieldErrs form.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.Render(http.StatusOK, h.variant.Template, h.page(c, sess, h.now(), raw, fieldErrs))
		}
		return err
	}

	ctx := c.Request().Context()
	name := values[form.FieldName]
	user, known, err := h.registrations.Register(ctx, name)
	if err != nil {
		return err
	}

	if previous, ok := sess.Record.Value(form.FieldName); ok && previous != name {
		sess.Record.AddFlash(h.variant.NameChangedNotice)
	}
	sess.Record.SetValues(values)
	sess.Record.Known = known
	if err := h.sessions.Save(ctx, sess); err != nil {
		return err
	}

	h.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"known":   known,
		"variant": h.variant.Key,
	}).Debug("visitor recorded")

	return c.Redirect(http.StatusFound, c.Echo().Reverse(RouteIndex))
}

// page builds the view of the form filled with values.
func (h *IndexHandler) page(c echo.Context, sess *session.Session, now time.Time, values map[string]string, fieldErrs form.FieldErrors) indexPage {
	rec := sess.Record
	name, _ := rec.Value(form.FieldName)

	page := indexPage{
		Page:   render.Page{Title: h.variant.Title},
		Action: c.Echo().Reverse(RouteIndex),
		Fields: make([]fieldView, 0, len(h.variant.Schema)),
		Name:   name,
		Known:  rec.Known,
		Values: rec.Values,
	}
	if h.variant.Key == form.Enrollment.Key {
		page.Lang = "pt-BR"
	}

	for _, f := range h.variant.Schema {
		fv := fieldView{
			Name:     f.Name,
			Label:    f.Label,
			Value:    values[f.Name],
			Required: f.Required,
			Errors:   fieldErrs[f.Name],
		}
		for _, choice := range f.Choices {
			fv.Options = append(fv.Options, optionView{Value: choice, Selected: choice == fv.Value})
		}
		page.Fields = append(page.Fields, fv)
	}

	if h.variant.ShowRequestInfo {
		page.RemoteAddr = c.RealIP()
		page.Host = c.Request().Host
	}
	if h.variant.ShowElapsed && rec.StartedAt != nil {
		page.StartedAt = rec.StartedAt
		page.Now = now
		page.Elapsed = rec.Elapsed(now)
	}
	return page
}
