package di

import (
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/adapter/news_http"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/adapter/newsapi"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/adapter/repository"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/adapter/stocks"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/infra/config"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/usecase"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/worker"
)

// ApplicationComponents holds all wired dependencies for the application.
type ApplicationComponents struct {
	Taxonomy    *domain.Taxonomy
	ArticleRepo domain.ArticleRepository

	IngestUsecase  usecase.IngestArticlesUsecase
	QueryUsecase   usecase.QueryNewsUsecase
	ImpactUsecase  usecase.ImpactAnalysisUsecase
	RefreshUsecase usecase.RefreshNewsUsecase
	MaintUsecase   usecase.MaintenanceUsecase

	Handler     *news_http.Handler
	RateLimiter *news_http.RateLimiter
	Worker      *worker.RefreshWorker
}

// NewApplicationComponents wires all dependencies from config and database pool.
func NewApplicationComponents(cfg *config.Config, pool *pgxpool.Pool, log *slog.Logger) (*ApplicationComponents, error) {
	tax, err := domain.LoadTaxonomy()
	if err != nil {
		return nil, err
	}

	// Repositories
	articleRepo := repository.NewArticleRepository(pool, log)

	// External collaborators
	fetcher := newsapi.NewClient(
		cfg.News.BaseURL,
		cfg.News.APIKey,
		time.Duration(cfg.News.TimeoutSeconds)*time.Second,
		tax,
		log,
	)
	quotes := stocks.NewProvider(time.Duration(cfg.Stocks.CacheTTLMinutes)*time.Minute, log)

	// Domain services
	classifier := domain.NewKeywordClassifier(tax)
	normalizer := domain.NewNormalizer(classifier, domain.NewIdentifierPolicy())

	// Usecases
	ingestUsecase := usecase.NewIngestArticlesUsecase(normalizer, articleRepo, log)
	queryUsecase := usecase.NewQueryNewsUsecase(articleRepo)
	impactUsecase := usecase.NewImpactAnalysisUsecase(tax, classifier, quotes, log)
	refreshUsecase := usecase.NewRefreshNewsUsecase(fetcher, ingestUsecase, tax, log)
	maintUsecase := usecase.NewMaintenanceUsecase(articleRepo, log)

	// HTTP boundary
	handler := news_http.NewHandler(ingestUsecase, queryUsecase, impactUsecase, refreshUsecase, maintUsecase)
	rateLimiter := news_http.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)

	// Worker
	refreshWorker := worker.NewRefreshWorker(
		refreshUsecase,
		time.Duration(cfg.Worker.IntervalSeconds)*time.Second,
		cfg.News.FetchLimit,
		log,
	)

	return &ApplicationComponents{
		Taxonomy:       tax,
		ArticleRepo:    articleRepo,
		IngestUsecase:  ingestUsecase,
		QueryUsecase:   queryUsecase,
		ImpactUsecase:  impactUsecase,
		RefreshUsecase: refreshUsecase,
		MaintUsecase:   maintUsecase,
		Handler:        handler,
		RateLimiter:    rateLimiter,
		Worker:         refreshWorker,
	}, nil
}
