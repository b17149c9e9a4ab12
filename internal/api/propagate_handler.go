package api

import (
	"bytes"
	"net/http"
	"strconv"

	"areaprop/app"
	"areaprop/domain/propagation"
	"areaprop/internal"
	"areaprop/internal/errors"
	"areaprop/ports"

	"github.com/gin-gonic/gin"
)

// PropagateHandler serves propagation runs over HTTP. Nothing is kept
// between requests.
type PropagateHandler struct {
	service        *app.PropagationService
	renderer       ports.RenderPort
	defaultSamples int
	logger         *internal.Logger
}

// NewPropagateHandler creates a new propagate handler
func NewPropagateHandler(service *app.PropagationService, renderer ports.RenderPort, defaultSamples int, logger *internal.Logger) *PropagateHandler {
	return &PropagateHandler{
		service:        service,
		renderer:       renderer,
		defaultSamples: defaultSamples,
		logger:         logger,
	}
}

// PropagateRequest is the JSON body of POST /v1/propagate
type PropagateRequest struct {
	MeanA     *float64 `json:"meanA"`
	StdA      *float64 `json:"stdA"`
	MeanB     *float64 `json:"meanB"`
	StdB      *float64 `json:"stdB"`
	Samples   *int     `json:"samples"`
	Seed      *int64   `json:"seed"`
	Variables int      `json:"variables"`
}

// PropagateResponse is the JSON result of a run
type PropagateResponse struct {
	RunID       string              `json:"run_id"`
	Fingerprint string              `json:"fingerprint"`
	Samples     int                 `json:"samples"`
	Mode        string              `json:"mode"`
	Seed        *int64              `json:"seed,omitempty"`
	Stats       propagation.Summary `json:"stats"`
}

func (r PropagateRequest) values() map[app.ParamKey]string {
	values := make(map[app.ParamKey]string)
	putFloat := func(key app.ParamKey, v *float64) {
		if v != nil {
			values[key] = strconv.FormatFloat(*v, 'g', -1, 64)
		}
	}
	putFloat(app.KeyMeanA, r.MeanA)
	putFloat(app.KeyStdA, r.StdA)
	putFloat(app.KeyMeanB, r.MeanB)
	putFloat(app.KeyStdB, r.StdB)
	if r.Samples != nil {
		values[app.KeySamples] = strconv.Itoa(*r.Samples)
	}
	if r.Seed != nil {
		values[app.KeySeed] = strconv.FormatInt(*r.Seed, 10)
	}
	return values
}

// Propagate handles POST /v1/propagate
func (h *PropagateHandler) Propagate(c *gin.Context) {
	var req PropagateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, errors.InvalidInputf(err, "request body must be JSON with numeric parameters"))
		return
	}

	result, err := h.run(c, req.Variables, app.NewMapSource("request", req.values()))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, PropagateResponse{
		RunID:       result.Manifest.RunID.String(),
		Fingerprint: result.Manifest.Fingerprint.String(),
		Samples:     result.Manifest.Config.SampleCount,
		Mode:        result.Manifest.Mode,
		Seed:        result.Manifest.Config.Seed,
		Stats:       result.Summary,
	})
}

// Figure handles GET /v1/propagate/figure.png with parameters in the query string
func (h *PropagateHandler) Figure(c *gin.Context) {
	variables := 0
	if raw := c.Query("variables"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(c, errors.InvalidInputf(err, "variables must be 1 or 2"))
			return
		}
		variables = n
	}

	values := make(map[app.ParamKey]string)
	for _, key := range []app.ParamKey{app.KeyMeanA, app.KeyStdA, app.KeyMeanB, app.KeyStdB, app.KeySamples, app.KeySeed} {
		values[key] = c.Query(string(key))
	}

	result, err := h.run(c, variables, app.NewMapSource("query", values))
	if err != nil {
		h.fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.WriteFigure(c.Request.Context(), &buf, result); err != nil {
		h.fail(c, errors.Wrap(err, "rendering figure"))
		return
	}
	c.Header("X-Run-ID", result.Manifest.RunID.String())
	c.Header("X-Fingerprint", result.Manifest.Fingerprint.String())
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *PropagateHandler) run(c *gin.Context, variables int, src app.ValueSource) (*propagation.Result, error) {
	if variables == 0 {
		variables = 2
	}
	mode, err := propagation.ModeForVariables(variables)
	if err != nil {
		return nil, errors.InvalidParameter(err.Error())
	}

	ctx := c.Request.Context()
	params, cfg, err := app.NewParameterResolver(mode, h.defaultSamples, src).Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return h.service.Propagate(ctx, params, cfg)
}

func (h *PropagateHandler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.IsUserError(err) {
		status = http.StatusBadRequest
	} else {
		h.logger.Error("propagation request failed: %v", err)
	}
	c.JSON(status, gin.H{
		"error": errors.UserMessage(err),
		"code":  errors.GetCode(err),
	})
}
