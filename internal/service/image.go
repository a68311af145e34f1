package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"vocabapi/internal/model"
	"vocabapi/internal/repository"
	"vocabapi/internal/storage"
)

const (
	DefaultImagePrefix   = "image_users"
	DefaultMaxImageBytes = 5 << 20
)

// imageExtensions is the allow-list of stored image types and their file extensions.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var extensionTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// ImageUpload is one uploaded file. Filename is only consulted when ContentType is missing
// or generic.
type ImageUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// ImageService manages the single image attached to each dictionary word.
type ImageService interface {
	// Upload stores the image under a name derived from the business id, replacing any
	// previous image, and points the word (and its assignment copies) at it.
	Upload(ctx context.Context, businessID string, in ImageUpload) (*model.ImageRef, error)

	// Fetch streams the stored bytes. The caller closes the reader.
	Fetch(ctx context.Context, businessID string) (io.ReadCloser, storage.ObjectInfo, error)

	// Delete clears the word's image reference and removes the stored object.
	Delete(ctx context.Context, businessID string) error
}

// ImageOptions configures where images go and how large they may be.
type ImageOptions struct {
	Prefix   string
	MaxBytes int64
}

type imageService struct {
	words       repository.WordRepository
	assignments repository.AssignmentRepository
	store       storage.Storage
	opts        ImageOptions
	log         *zap.Logger
	now         func() time.Time

	locks   keyedMutex
	uploads *prometheus.CounterVec
	sizes   prometheus.Histogram
}

// NewImageService constructs a new ImageService and registers its metrics on reg.
func NewImageService(
	words repository.WordRepository,
	assignments repository.AssignmentRepository,
	store storage.Storage,
	opts ImageOptions,
	reg prometheus.Registerer,
	log *zap.Logger,
) (ImageService, error) {
	if opts.Prefix == "" {
		opts.Prefix = DefaultImagePrefix
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxImageBytes
	}
	s := &imageService{
		words:       words,
		assignments: assignments,
		store:       store,
		opts:        opts,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "image_uploads_total",
			Help: "Image uploads by outcome code.",
		}, []string{"result"}),
		sizes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "image_upload_bytes",
			Help:    "Size of accepted image uploads.",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		}),
	}
	for _, c := range []prometheus.Collector{s.uploads, s.sizes} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register image metrics: %w", err)
		}
	}
	return s, nil
}

var (
	errImageNotFound = newNotFound(CodeNotFound, "image not found")
	errImageFormat   = newValidation(CodeInvalidImageFormat, "image", "only JPEG, PNG and WEBP images are allowed")
)

func (s *imageService) tooLarge() *Error {
	return &Error{
		Status:  http.StatusRequestEntityTooLarge,
		Code:    CodeImageTooLarge,
		Field:   "image",
		Message: fmt.Sprintf("image exceeds the maximum size of %d bytes", s.opts.MaxBytes),
	}
}

// Key returns the object key for a business id and content type.
func (s *imageService) key(businessID, contentType string) string {
	return path.Join(s.opts.Prefix, businessID+imageExtensions[contentType])
}

func (s *imageService) Upload(ctx context.Context, businessID string, in ImageUpload) (ref *model.ImageRef, err error) {
	ctx, span := otel.Tracer("vocabapi/service").Start(ctx, "ImageService.Upload")
	span.SetAttributes(attribute.String("word.id", businessID), attribute.Int64("image.declared_size", in.Size))
	defer func() {
		s.uploads.WithLabelValues(resultLabel(err)).Inc()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, CodeOf(err))
		}
		span.End()
	}()

	if !ValidBusinessID(businessID) {
		return nil, errWordNotFound
	}

	unlock := s.locks.Lock(businessID)
	defer unlock()

	w, err := s.words.FindByWordID(ctx, businessID)
	if err != nil {
		return nil, mapWordErr(err)
	}

	if in.Size > s.opts.MaxBytes {
		return nil, s.tooLarge()
	}
	if in.Reader == nil {
		return nil, errImageFormat
	}
	data, err := io.ReadAll(io.LimitReader(in.Reader, s.opts.MaxBytes+1))
	if err != nil {
		return nil, Internal(fmt.Errorf("read upload: %w", err))
	}
	if int64(len(data)) > s.opts.MaxBytes {
		return nil, s.tooLarge()
	}

	declared := NormalizeImageType(in.ContentType, in.Filename)
	if _, ok := imageExtensions[declared]; !ok {
		return nil, errImageFormat
	}
	sniffed := NormalizeImageType(mimetype.Detect(data).String(), "")
	if _, ok := imageExtensions[sniffed]; !ok {
		return nil, errImageFormat
	}
	span.SetAttributes(attribute.String("image.content_type", sniffed))

	key := s.key(businessID, sniffed)
	info, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: sniffed,
		Metadata:    map[string]string{"word-id": businessID},
	})
	if err != nil {
		return nil, Internal(fmt.Errorf("store image: %w", err))
	}

	replaced := w.ImageURL != nil && *w.ImageURL != key

	now := s.now()
	updated, err := s.words.SetImage(ctx, businessID, &key, now)
	if err != nil {
		// the word still points at its previous object; drop only the one nothing references
		if w.ImageURL == nil || replaced {
			s.removeObject(ctx, businessID, key)
		}
		return nil, mapWordErr(err)
	}
	if replaced {
		s.removeObject(ctx, businessID, *w.ImageURL)
	}
	refreshAssignments(ctx, s.assignments, s.log, *updated, now)

	s.sizes.Observe(float64(info.Size))
	s.log.Info("image_uploaded",
		zap.String("word_id", businessID),
		zap.String("key", key),
		zap.String("content_type", sniffed),
		zap.Int64("size", info.Size),
	)
	return &model.ImageRef{WordID: businessID, ImageURL: key, ContentType: sniffed, Size: info.Size}, nil
}

func (s *imageService) removeObject(ctx context.Context, businessID, key string) {
	if err := s.store.Delete(ctx, key); err != nil {
		s.log.Warn("image_cleanup_failed", zap.String("word_id", businessID), zap.String("key", key), zap.Error(err))
	}
}

func (s *imageService) Fetch(ctx context.Context, businessID string) (io.ReadCloser, storage.ObjectInfo, error) {
	if !ValidBusinessID(businessID) {
		return nil, storage.ObjectInfo{}, errWordNotFound
	}
	w, err := s.words.FindByWordID(ctx, businessID)
	if err != nil {
		return nil, storage.ObjectInfo{}, mapWordErr(err)
	}
	if w.ImageURL == nil || *w.ImageURL == "" {
		return nil, storage.ObjectInfo{}, errImageNotFound
	}
	rc, info, err := s.store.Get(ctx, *w.ImageURL)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, storage.ObjectInfo{}, errImageNotFound
		}
		return nil, storage.ObjectInfo{}, Internal(err)
	}
	if ct, ok := extensionTypes[strings.ToLower(path.Ext(*w.ImageURL))]; ok {
		info.ContentType = ct
	}
	return rc, info, nil
}

func (s *imageService) Delete(ctx context.Context, businessID string) error {
	if !ValidBusinessID(businessID) {
		return errWordNotFound
	}
	unlock := s.locks.Lock(businessID)
	defer unlock()

	w, err := s.words.FindByWordID(ctx, businessID)
	if err != nil {
		return mapWordErr(err)
	}
	if w.ImageURL == nil {
		return errImageNotFound
	}

	now := s.now()
	updated, err := s.words.SetImage(ctx, businessID, nil, now)
	if err != nil {
		return mapWordErr(err)
	}
	if err := s.store.Delete(ctx, *w.ImageURL); err != nil {
		s.log.Warn("image_cleanup_failed", zap.String("word_id", businessID), zap.String("key", *w.ImageURL), zap.Error(err))
	}
	refreshAssignments(ctx, s.assignments, s.log, *updated, now)
	s.log.Info("image_deleted", zap.String("word_id", businessID))
	return nil
}

// NormalizeImageType lowercases a media type, drops parameters and folds image/jpg into
// image/jpeg. An empty or generic type falls back to the filename's extension.
func NormalizeImageType(contentType, filename string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "" || ct == "application/octet-stream" {
		ct = extensionTypes[strings.ToLower(path.Ext(filename))]
	}
	if ct == "image/jpg" || ct == "image/pjpeg" {
		ct = "image/jpeg"
	}
	return ct
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return strings.ToLower(CodeOf(err))
}

// keyedMutex serializes work per key. Entries are dropped once no goroutine holds or waits
// on them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*refMutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
