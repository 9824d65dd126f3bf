package notification

import (
	"context"
	"log/slog"

	"carmarket/config"
	"carmarket/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// multicastSender is the part of messaging.Client the service uses.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// NewFirebaseService creates the push sender. Without Firebase configuration it
// returns a sender that only logs, so local development needs no credentials.
func NewFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	fbCfg := cfg.Firebase
	if fbCfg == nil || (fbCfg.CredentialsPath == "" && fbCfg.ProjectID == "") {
		logger.Info("Firebase not configured, push notifications are logged only")

		return &logOnlyService{logger: logger}, nil
	}

	var opts []option.ClientOption
	if fbCfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(fbCfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if fbCfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: fbCfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendBatchNotification sends one multicast request and collects tokens Firebase rejected for good.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, notification *service.PushNotification) (*service.PushReport, error) {
	report := &service.PushReport{InvalidTokens: []string{}}
	if len(tokens) == 0 {
		return report, nil
	}

	if len(tokens) > service.MaxBatchTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxBatchTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: notification.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	report.SuccessCount = response.SuccessCount
	report.FailureCount = response.FailureCount

	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			report.InvalidTokens = append(report.InvalidTokens, tokens[idx])
		}
	}

	return report, nil
}

type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendBatchNotification(ctx context.Context, tokens []string, notification *service.PushNotification) (*service.PushReport, error) {
	s.logger.InfoContext(ctx, "Push notification (not sent)",
		slog.String("title", notification.Title),
		slog.Int("token_count", len(tokens)),
	)

	return &service.PushReport{SuccessCount: len(tokens), InvalidTokens: []string{}}, nil
}
