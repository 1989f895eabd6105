package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rahat-dev/mindnest/backend/internal/models"
	"github.com/rahat-dev/mindnest/backend/validators"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSupportRepo struct {
	messages map[uint]*models.SupportMessage
	updated  *models.SupportMessage
}

func newFakeSupportRepo(msgs ...*models.SupportMessage) *fakeSupportRepo {
	r := &fakeSupportRepo{messages: make(map[uint]*models.SupportMessage)}
	for _, m := range msgs {
		r.messages[m.ID] = m
	}
	return r
}

func (r *fakeSupportRepo) CreateMessage(msg *models.SupportMessage) error {
	msg.ID = uint(len(r.messages) + 1)
	r.messages[msg.ID] = msg
	return nil
}

func (r *fakeSupportRepo) GetMessageByID(id uint) (*models.SupportMessage, error) {
	msg, ok := r.messages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return msg, nil
}

func (r *fakeSupportRepo) GetMessages(status string, page, limit int) ([]models.SupportMessage, int64, error) {
	var out []models.SupportMessage
	for _, m := range r.messages {
		if status == "" || m.Status == status {
			out = append(out, *m)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeSupportRepo) GetMessagesByUserID(userID uint) ([]models.SupportMessage, error) {
	var out []models.SupportMessage
	for _, m := range r.messages {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeSupportRepo) UpdateMessage(msg *models.SupportMessage) error {
	r.messages[msg.ID] = msg
	r.updated = msg
	return nil
}

type fakeUserRepo struct {
	users map[uint]*models.User
}

func (r *fakeUserRepo) CreateUser(user *models.User) error { return nil }
func (r *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}
func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeUserRepo) GetUserByFirebaseUID(uid string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeUserRepo) GetUsers() ([]models.User, error)    { return nil, nil }
func (r *fakeUserRepo) UpdateUser(user *models.User) error  { return nil }
func (r *fakeUserRepo) DeleteUser(id uint) error            { return nil }

type fakeMailer struct {
	sent []string
	err  error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func newTestContext(method, path, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validators.NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set("user", &models.JwtCustomClaims{UserID: userID})
	}
	return c, rec
}

func TestCreateSupportMessage(t *testing.T) {
	repo := newFakeSupportRepo()
	h := NewSupportHandler(repo, &fakeUserRepo{}, &fakeMailer{})

	c, rec := newTestContext(http.MethodPost, "/support",
		`{"subject":"Export request","body":"Please export my data."}`, 7)

	err := h.CreateMessage(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var msg models.SupportMessage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, uint(7), msg.UserID)
	assert.Equal(t, models.SupportOpen, msg.Status)
}

func TestCreateSupportMessageRejectsEmptyBody(t *testing.T) {
	h := NewSupportHandler(newFakeSupportRepo(), &fakeUserRepo{}, &fakeMailer{})

	c, _ := newTestContext(http.MethodPost, "/support", `{"subject":"Hi","body":""}`, 7)

	err := h.CreateMessage(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestReplyToMessageSendsEmailAndMarksReplied(t *testing.T) {
	msg := &models.SupportMessage{
		Model:   gorm.Model{ID: 3},
		UserID:  7,
		Subject: "Export request",
		Body:    "Please export my data.",
		Status:  models.SupportOpen,
	}
	repo := newFakeSupportRepo(msg)
	users := &fakeUserRepo{users: map[uint]*models.User{
		7: {ID: 7, Name: "Ana", Email: "ana@example.com"},
	}}
	mailer := &fakeMailer{}
	h := NewSupportHandler(repo, users, mailer)

	c, rec := newTestContext(http.MethodPost, "/admin/support/3/reply",
		`{"body":"Your export is attached."}`, 1)
	c.SetParamNames("id")
	c.SetParamValues("3")

	err := h.ReplyToMessage(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"ana@example.com"}, mailer.sent)
	assert.Equal(t, models.SupportReplied, repo.updated.Status)
	assert.Equal(t, "Your export is attached.", repo.updated.ReplyBody)
	assert.NotNil(t, repo.updated.RepliedAt)
}

func TestReplyToMessageKeepsOpenWhenEmailFails(t *testing.T) {
	msg := &models.SupportMessage{
		Model:  gorm.Model{ID: 3},
		UserID: 7,
		Status: models.SupportOpen,
	}
	repo := newFakeSupportRepo(msg)
	users := &fakeUserRepo{users: map[uint]*models.User{
		7: {ID: 7, Email: "ana@example.com"},
	}}
	h := NewSupportHandler(repo, users, &fakeMailer{err: errors.New("smtp down")})

	c, _ := newTestContext(http.MethodPost, "/admin/support/3/reply", `{"body":"Reply."}`, 1)
	c.SetParamNames("id")
	c.SetParamValues("3")

	err := h.ReplyToMessage(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
	assert.Equal(t, models.SupportOpen, msg.Status)
	assert.Nil(t, repo.updated)
}

func TestReplyToClosedMessageConflicts(t *testing.T) {
	msg := &models.SupportMessage{
		Model:  gorm.Model{ID: 3},
		UserID: 7,
		Status: models.SupportClosed,
	}
	repo := newFakeSupportRepo(msg)
	h := NewSupportHandler(repo, &fakeUserRepo{}, &fakeMailer{})

	c, _ := newTestContext(http.MethodPost, "/admin/support/3/reply", `{"body":"Reply."}`, 1)
	c.SetParamNames("id")
	c.SetParamValues("3")

	err := h.ReplyToMessage(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestReplyToMissingMessage(t *testing.T) {
	h := NewSupportHandler(newFakeSupportRepo(), &fakeUserRepo{}, &fakeMailer{})

	c, _ := newTestContext(http.MethodPost, "/admin/support/99/reply", `{"body":"Reply."}`, 1)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.ReplyToMessage(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestCloseMessage(t *testing.T) {
	msg := &models.SupportMessage{
		Model:  gorm.Model{ID: 3},
		UserID: 7,
		Status: models.SupportOpen,
	}
	repo := newFakeSupportRepo(msg)
	h := NewSupportHandler(repo, &fakeUserRepo{}, &fakeMailer{})

	c, rec := newTestContext(http.MethodPost, "/admin/support/3/close", "", 1)
	c.SetParamNames("id")
	c.SetParamValues("3")

	err := h.CloseMessage(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.SupportClosed, repo.updated.Status)
}
