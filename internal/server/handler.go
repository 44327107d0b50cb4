package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"skilladvisor/internal/extract"
	"skilladvisor/internal/observability"
	"skilladvisor/internal/plan"
	"skilladvisor/internal/types"
	"skilladvisor/internal/utils"

	"go.opentelemetry.io/otel/attribute"
)

// createAdviseHandler wraps the advise handler with observability
func (s *Server) createAdviseHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := r.Context()
		tracer := om.Tracer("skilladvisor.api")
		ctx, span := tracer.Start(ctx, "api.advise")
		defer span.End()

		var req AdviseRequest
		var err error
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			req, err = parseMultipartAdvise(r)
		} else {
			err = parseJSONRequest(r, &req)
		}
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)+len(req.ResumeText)),
			attribute.Bool("request.manual_skills", strings.TrimSpace(req.Skills) != ""),
			attribute.String("operation", "advise"),
		)

		input := types.AdviseInput{
			ManualSkill: req.Skills,
			WeeklyHours: req.WeeklyHours,
			TopRoles:    req.TopRoles,
		}
		switch {
		case len(req.Resume) > 0:
			input.Resume = req.Resume
			input.MimeType = req.Mime
			if input.MimeType == "" {
				input.MimeType = extract.MimePlainText
			}
		case strings.TrimSpace(req.ResumeText) != "":
			input.Resume = []byte(req.ResumeText)
			input.MimeType = extract.MimePlainText
		}

		metrics := om.GetMetrics()
		var result types.AdviseOutput
		err = metrics.TrackPipelineOperation(ctx, "advise", func(ctx context.Context) error {
			var runErr error
			result, runErr = s.Advisor.Advise(ctx, input)
			return runErr
		})

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "pipeline"))
			metrics.RecordResumeAnalyzed(ctx, false, attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to run advisory pipeline", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordResumeAnalyzed(ctx, true,
			attribute.Int("skills_found", len(result.Profile.Skills)))
		metrics.RecordPlanGenerated(ctx,
			attribute.Int("plan_items", len(result.Plan)))
		metrics.RecordParseWarnings(ctx, len(result.Warnings))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.recommendations", len(result.Recommendations)),
			attribute.Int("response.plan_items", len(result.Plan)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// parseMultipartAdvise reads an advise request from a multipart form: an
// optional "resume" file part plus "skills", "topRoles" and "weeklyHours"
// fields. The resume MIME type comes from the part header, falling back to
// filename extension detection.
func parseMultipartAdvise(r *http.Request) (AdviseRequest, error) {
	var req AdviseRequest

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return req, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	file, header, err := r.FormFile("resume")
	switch {
	case err == nil:
		data, readErr := io.ReadAll(file)
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("Failed to close resume upload: %v", closeErr)
		}
		if readErr != nil {
			return req, fmt.Errorf("failed to read resume upload: %w", readErr)
		}
		req.Resume = data
		req.Mime = header.Header.Get("Content-Type")
		// Browsers and form writers often tag uploads as octet-stream;
		// fall back to the filename extension.
		if req.Mime == "" || req.Mime == "application/octet-stream" {
			req.Mime = utils.DetectMimeType(header.Filename)
		}
	case errors.Is(err, http.ErrMissingFile):
		// A skills-only form is fine.
	default:
		return req, fmt.Errorf("failed to read resume upload: %w", err)
	}

	req.Skills = r.FormValue("skills")
	if v := r.FormValue("topRoles"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			return req, fmt.Errorf("invalid topRoles value %q", v)
		}
		req.TopRoles = n
	}
	if v := r.FormValue("weeklyHours"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			return req, fmt.Errorf("invalid weeklyHours value %q", v)
		}
		req.WeeklyHours = n
	}

	return req, nil
}

// createExtractHandler wraps the extract handler with observability
func (s *Server) createExtractHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := r.Context()
		tracer := om.Tracer("skilladvisor.api")
		ctx, span := tracer.Start(ctx, "api.extract")
		defer span.End()

		var req ExtractRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		data := req.Resume
		mimeType := req.Mime
		if len(data) == 0 {
			data = []byte(req.ResumeText)
			mimeType = extract.MimePlainText
		}
		if mimeType == "" {
			mimeType = extract.MimePlainText
		}
		if strings.TrimSpace(string(data)) == "" {
			err := fmt.Errorf("missing resume content")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume content", "resume or resumeText field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(data)),
			attribute.String("operation", "extract"),
		)

		metrics := om.GetMetrics()
		var result types.ExtractOutput
		err := metrics.TrackPipelineOperation(ctx, "extract", func(ctx context.Context) error {
			var runErr error
			result, runErr = s.Advisor.Extract(ctx, data, mimeType)
			return runErr
		})

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "pipeline"))
			metrics.RecordResumeAnalyzed(ctx, false, attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to extract resume", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordResumeAnalyzed(ctx, true,
			attribute.Int("skills_found", len(result.Profile.Skills)))
		metrics.RecordParseWarnings(ctx, len(result.Warnings))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.skills_found", len(result.Profile.Skills)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createPlanDownloadHandler serves the learning plan as a downloadable JSON
// file. The plan is built from the same pipeline inputs as the advise
// endpoint, passed as query parameters.
func (s *Server) createPlanDownloadHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := r.Context()
		tracer := om.Tracer("skilladvisor.api")
		ctx, span := tracer.Start(ctx, "api.plan_download")
		defer span.End()

		input := types.AdviseInput{
			ManualSkill: r.URL.Query().Get("skills"),
		}

		metrics := om.GetMetrics()
		var result types.AdviseOutput
		err := metrics.TrackPipelineOperation(ctx, "plan", func(ctx context.Context) error {
			var runErr error
			result, runErr = s.Advisor.Advise(ctx, input)
			return runErr
		})

		if err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Failed to build learning plan", err.Error(), http.StatusInternalServerError)
			return
		}

		payload, err := plan.MarshalJSON(result.Plan)
		if err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Failed to encode learning plan", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordPlanGenerated(ctx,
			attribute.Int("plan_items", len(result.Plan)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.plan_items", len(result.Plan)),
		)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", plan.Filename))
		if _, err := w.Write(payload); err != nil {
			span.RecordError(err)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordRateLimitHit(r.Context(),
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
