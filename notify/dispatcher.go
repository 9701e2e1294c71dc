package notify

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"lms/models"
	courseModels "lms/models/course"
)

// maxAttempts bounds delivery retries of one notification.
const maxAttempts = 5

// Dispatcher mails pending notifications on a cron schedule.
type Dispatcher struct {
	db      *gorm.DB
	mailer  Mailer
	log     zerolog.Logger
	appName string
	baseURL string
}

func NewDispatcher(db *gorm.DB, mailer Mailer, log zerolog.Logger, appName, baseURL string) *Dispatcher {
	return &Dispatcher{db: db, mailer: mailer, log: log, appName: appName, baseURL: baseURL}
}

// Start schedules RunOnce with spec (e.g. "@every 1m") and returns the
// running scheduler so the caller can stop it.
func (d *Dispatcher) Start(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		sent, err := d.RunOnce(context.Background())
		if err != nil {
			d.log.Error().Err(err).Msg("notification dispatch failed")
			return
		}
		if sent > 0 {
			d.log.Info().Int("sent", sent).Msg("notifications dispatched")
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	d.log.Info().Str("schedule", spec).Msg("notification dispatcher started")
	return c, nil
}

// RunOnce mails every pending notification and returns how many were sent.
func (d *Dispatcher) RunOnce(ctx context.Context) (int, error) {
	var pending []courseModels.Notification
	if err := d.db.WithContext(ctx).
		Where("sent_at IS NULL AND attempts < ?", maxAttempts).
		Order("id").
		Find(&pending).Error; err != nil {
		return 0, err
	}

	sent := 0
	for i := range pending {
		n := &pending[i]
		recipients, err := d.recipients(ctx, n)
		if err == nil {
			err = d.mailer.Send(ctx, d.message(n, recipients))
		}
		if err != nil {
			d.log.Warn().Err(err).Uint("notificationId", n.ID).Msg("notification not delivered")
			d.db.WithContext(ctx).Model(n).Updates(map[string]interface{}{
				"attempts":   n.Attempts + 1,
				"last_error": err.Error(),
			})
			continue
		}
		now := time.Now()
		if err := d.db.WithContext(ctx).Model(n).Updates(map[string]interface{}{
			"sent_at":  now,
			"attempts": n.Attempts + 1,
		}).Error; err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

func (d *Dispatcher) recipients(ctx context.Context, n *courseModels.Notification) ([]Recipient, error) {
	var users []models.User
	q := d.db.WithContext(ctx).Model(&models.User{}).
		Where("users.is_deleted = ? AND users.is_blocked = ?", false, false)
	switch {
	case n.Global:
	case n.CourseID != nil:
		q = q.Joins("JOIN enrollments ON enrollments.user_id = users.id AND enrollments.deleted_at IS NULL").
			Where("enrollments.course_id = ?", *n.CourseID)
	default:
		return nil, nil
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	out := make([]Recipient, 0, len(users))
	for _, u := range users {
		out = append(out, Recipient{Name: u.Name, Email: u.Email})
	}
	return out, nil
}

func (d *Dispatcher) message(n *courseModels.Notification, to []Recipient) Message {
	link := n.Link
	if link != "" && link[0] == '/' {
		link = d.baseURL + link
	}
	return Message{
		To:      to,
		Subject: n.Title,
		HTML:    renderHTML(d.appName, n.Title, n.Message, link),
		Text:    renderText(n.Title, n.Message, link),
	}
}
