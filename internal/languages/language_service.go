package languages

import (
	"context"
	"errors"
	"strconv"

	"langshare/internal/github"
	"langshare/internal/models"
	"langshare/internal/shared/loggers"
	"langshare/internal/shared/metrics"
	"langshare/internal/shared/svcerrors"
	"langshare/internal/shared/validators"
)

//go:generate mockgen -source=language_service.go -destination=./mocks/language_service_mock.go -package=mocks
type LanguageService interface {
	// UserLanguages reports the language composition of the login's owned, non-archived
	// repositories.
	UserLanguages(ctx context.Context, login string) (*models.LanguageReport, error)
}

type userLanguagesRequest struct {
	Login string `validate:"required,max=39,github_login"`
}

type languageService struct {
	repositoryFetcher github.RepositoryFetcher
	shareOptions      ShareOptions
	validate          *validators.Validate
}

func NewLanguageService(repositoryFetcher github.RepositoryFetcher, shareOptions ShareOptions) LanguageService {
	return &languageService{
		repositoryFetcher: repositoryFetcher,
		shareOptions:      shareOptions,
		validate:          validators.New(),
	}
}

func (s *languageService) UserLanguages(ctx context.Context, login string) (*models.LanguageReport, error) {
	report, err := s.userLanguages(ctx, login)
	if err != nil {
		errorCode := metrics.ValueNoError
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			errorCode = svcErr.Code
		}
		metricReportGeneratedTotal.WithLabelValues(errorCode).Inc()
		return nil, err
	}

	metricReportGeneratedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return report, nil
}

func (s *languageService) userLanguages(ctx context.Context, login string) (*models.LanguageReport, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started building language report for login: %s", login)

	if err := s.validate.Struct(&userLanguagesRequest{Login: login}); err != nil {
		return nil, errInvalidLogin(err)
	}

	repositories, err := s.repositoryFetcher.FetchRepositories(ctx, login)
	if err != nil {
		if errors.Is(err, github.ErrUserNotFound) {
			return nil, errUserNotFound(err)
		}
		return nil, errUpstreamFailed(err)
	}

	totals := sumLanguageSizes(repositories)
	report, residual, err := buildReport(totals, s.shareOptions)
	if err != nil {
		return nil, errInternalNormalizeFailed(err)
	}

	if residual != 0 {
		metricShareResidualTotal.WithLabelValues(strconv.Itoa(s.shareOptions.Precision)).Inc()
		logger.Warn().
			Str(loggers.FieldLogin, login).
			Int64(loggers.FieldResidual, residual).
			Msg("language shares do not sum to one after redistribution")
	}

	logger.Debug().
		Str(loggers.FieldLogin, login).
		Int(loggers.FieldRepositories, len(repositories)).
		Int(loggers.FieldLanguages, len(report.Languages)).
		Int64(loggers.FieldTotalBytes, report.Total).
		Msg("built language report")

	return report, nil
}
