package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"health-reports/internal/cache"
	"health-reports/internal/database"
	"health-reports/internal/events"
	"health-reports/internal/model"
	"health-reports/internal/storage"
	"health-reports/internal/store"
	"health-reports/internal/worker"
)

var (
	createReport      = store.CreateReport
	listReportsByUser = store.ListReportsByUser
)

const publishTimeout = 10 * time.Second

// ReportOptions carries the collaborators of a ReportService. Cache, Events
// and Pool are optional: without a cache every listing hits the database,
// without a pool events are published inline.
type ReportOptions struct {
	Images   storage.ImageStore
	Cache    cache.Cache
	CacheTTL time.Duration
	Events   events.Publisher
	Pool     worker.Pool
	Logger   *slog.Logger
}

type ReportService struct {
	db   database.DB
	opts ReportOptions
	log  *slog.Logger
}

func NewReportService(db database.DB, opts ReportOptions) *ReportService {
	if opts.Events == nil {
		opts.Events = events.NopPublisher{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &ReportService{db: db, opts: opts, log: log.With("component", "reports")}
}

// AddReportInput is a report as submitted by a client. Image is nil when no
// file was uploaded.
type AddReportInput struct {
	DoctorName   string
	HospitalName string
	ReportDate   string
	Disease      string
	UserID       int
	Image        *storage.Upload
}

func (in AddReportInput) validate() (model.Report, error) {
	if in.Image == nil || in.Image.Body == nil {
		return model.Report{}, invalid("reportImage", "Image is required")
	}
	if err := storage.SniffImage(in.Image); err != nil {
		if errors.Is(err, storage.ErrNotImage) {
			return model.Report{}, invalid("reportImage", "Only image files are allowed")
		}
		return model.Report{}, fmt.Errorf("inspect image: %w", err)
	}
	r := model.Report{
		DoctorName:   strings.TrimSpace(in.DoctorName),
		HospitalName: strings.TrimSpace(in.HospitalName),
		Disease:      strings.TrimSpace(in.Disease),
		UserID:       in.UserID,
	}
	if r.DoctorName == "" {
		return r, invalid("doctorName", "doctorName is required")
	}
	if r.HospitalName == "" {
		return r, invalid("hospitalName", "hospitalName is required")
	}
	d, err := time.Parse(model.ReportDateLayout, strings.TrimSpace(in.ReportDate))
	if err != nil {
		return r, invalid("reportDate", "reportDate must be a date in YYYY-MM-DD format")
	}
	r.ReportDate = d
	if r.UserID <= 0 {
		return r, invalid("userId", "userId is required")
	}
	if r.Disease == "" {
		r.Disease = model.DefaultDisease
	}
	return r, nil
}

// AddReport stores the image, then the report row. A row that cannot be
// written takes its image with it.
func (s *ReportService) AddReport(ctx context.Context, in AddReportInput) (*model.Report, error) {
	r, err := in.validate()
	if err != nil {
		return nil, err
	}

	ref, err := s.opts.Images.Save(ctx, *in.Image)
	if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}
	r.ImageURL = ref

	created, err := createReport(ctx, s.db, &r)
	if err != nil {
		if delErr := s.opts.Images.Delete(context.WithoutCancel(ctx), ref); delErr != nil {
			s.log.WarnContext(ctx, "orphaned report image", "image_url", ref, "error", delErr)
		}
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, invalid("userId", "user does not exist")
		}
		return nil, err
	}

	s.invalidate(ctx, created.UserID)
	s.publishCreated(*created)
	return created, nil
}

// ListReports returns the user's reports, newest report date first.
func (s *ReportService) ListReports(ctx context.Context, userID int) ([]model.Report, error) {
	if userID <= 0 {
		return nil, invalid("userId", "userId must be a positive integer")
	}

	version, useCache := s.cacheVersion(ctx, userID)
	if useCache {
		if cached, ok := s.cachedReports(ctx, userID, version); ok {
			return cached, nil
		}
	}

	reports, err := listReportsByUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if useCache {
		s.cacheReports(ctx, userID, version, reports)
	}
	return reports, nil
}

// Listings are cached under a per-user generation that every write bumps.
// Entries of older generations are never read again and age out by TTL.
func reportsVersionKey(userID int) string {
	return "reports:ver:" + strconv.Itoa(userID)
}

func reportsKey(userID int, version int64) string {
	return "reports:user:" + strconv.Itoa(userID) + ":v" + strconv.FormatInt(version, 10)
}

// cacheVersion returns the user's listing generation. ok is false when the
// cache is unusable for this request.
func (s *ReportService) cacheVersion(ctx context.Context, userID int) (int64, bool) {
	if s.opts.Cache == nil {
		return 0, false
	}
	v, err := s.opts.Cache.Get(ctx, reportsVersionKey(userID)).Int64()
	switch {
	case err == nil:
		return v, true
	case cache.IsMiss(err):
		return 0, true
	default:
		s.log.WarnContext(ctx, "report cache read failed", "user_id", userID, "error", err)
		return 0, false
	}
}

func (s *ReportService) cachedReports(ctx context.Context, userID int, version int64) ([]model.Report, bool) {
	raw, err := s.opts.Cache.Get(ctx, reportsKey(userID, version)).Bytes()
	if err != nil {
		if !cache.IsMiss(err) {
			s.log.WarnContext(ctx, "report cache read failed", "user_id", userID, "error", err)
		}
		return nil, false
	}
	var reports []model.Report
	if err := json.Unmarshal(raw, &reports); err != nil {
		s.log.WarnContext(ctx, "report cache entry corrupt", "user_id", userID, "error", err)
		return nil, false
	}
	return reports, true
}

func (s *ReportService) cacheReports(ctx context.Context, userID int, version int64, reports []model.Report) {
	raw, err := json.Marshal(reports)
	if err != nil {
		return
	}
	if err := s.opts.Cache.Set(ctx, reportsKey(userID, version), raw, s.opts.CacheTTL).Err(); err != nil {
		s.log.WarnContext(ctx, "report cache write failed", "user_id", userID, "error", err)
	}
}

func (s *ReportService) invalidate(ctx context.Context, userID int) {
	if s.opts.Cache == nil {
		return
	}
	if err := s.opts.Cache.Incr(ctx, reportsVersionKey(userID)).Err(); err != nil {
		s.log.WarnContext(ctx, "report cache invalidation failed", "user_id", userID, "error", err)
	}
}

func (s *ReportService) publishCreated(r model.Report) {
	e := events.ReportCreated{
		ReportID:     r.ID,
		UserID:       r.UserID,
		DoctorName:   r.DoctorName,
		HospitalName: r.HospitalName,
		ReportDate:   r.ReportDate.Format(model.ReportDateLayout),
		Disease:      r.Disease,
		ImageURL:     r.ImageURL,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
	}
	task := func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := s.opts.Events.PublishReportCreated(ctx, e); err != nil {
			s.log.Warn("publish report.created failed", "report_id", e.ReportID, "error", err)
		}
	}
	if s.opts.Pool == nil {
		task()
		return
	}
	if err := s.opts.Pool.Submit(task); err != nil {
		s.log.Warn("report.created dropped", "report_id", e.ReportID, "error", err)
	}
}
