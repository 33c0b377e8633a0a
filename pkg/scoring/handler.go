// Copyright (c) 2025, The MountainKid Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mountainkid/nutriscore/pkg/defaults"
	nserrors "github.com/mountainkid/nutriscore/pkg/errors"
	"github.com/mountainkid/nutriscore/pkg/serializer"
	"github.com/mountainkid/nutriscore/pkg/server"
	"gopkg.in/yaml.v3"
)

// CalculateResponse is the body returned by POST /api/calculate.
// Non-finite scores are encoded as null.
type CalculateResponse struct {
	Input Meal  `json:"input" yaml:"input"`
	Score Value `json:"score" yaml:"score"`
}

// BatchRequest is the body accepted by POST /api/calculate-batch.
type BatchRequest struct {
	Meals []Meal `json:"meals" yaml:"meals"`
}

// BatchResponse is the body returned by POST /api/calculate-batch.
// Non-finite scores are encoded as null.
type BatchResponse struct {
	Scores Scores `json:"scores" yaml:"scores"`
}

type rawBatchRequest struct {
	Meals *[]Meal `json:"meals" yaml:"meals"`
}

// HandleCalculate scores the meal in the request body.
func (e *Engine) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}

	data, ok := e.readBody(w, r)
	if !ok {
		return
	}

	var meal Meal
	if err := decodeBody(data, r.Header.Get("Content-Type"), &meal); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, nserrors.ErrCodeMalformedInput,
			"Invalid meal", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, CalculateResponse{
		Input: meal,
		Score: Value(e.Score(meal)),
	})
}

// HandleCalculateBatch scores every meal in the request body and returns
// the scores in request order.
func (e *Engine) HandleCalculateBatch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.BatchHandlerTimeout)
	defer cancel()

	if !allowPost(w, r) {
		return
	}

	data, ok := e.readBody(w, r)
	if !ok {
		return
	}

	var req rawBatchRequest
	if err := decodeBody(data, r.Header.Get("Content-Type"), &req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, nserrors.ErrCodeMalformedInput,
			"Invalid batch", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	if req.Meals == nil {
		server.WriteError(w, r, http.StatusBadRequest, nserrors.ErrCodeMalformedInput,
			"Batch must contain a meals list", false, nil)
		return
	}

	meals := *req.Meals
	if len(meals) > e.maxBatchSize {
		server.WriteError(w, r, http.StatusRequestEntityTooLarge, nserrors.ErrCodeRequestTooLarge,
			"Too many meals in batch", false, map[string]any{
				"count": len(meals),
				"max":   e.maxBatchSize,
			})
		return
	}

	scores, err := e.ScoreBatchContext(ctx, meals)
	if err != nil {
		slog.Warn("batch abandoned", "meals", len(meals), "error", err)
		server.WriteErrorFromErr(w, r,
			nserrors.Wrap(nserrors.ErrCodeTimeout, "Batch scoring did not complete", err),
			"Failed to score batch", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, BatchResponse{Scores: scores})
}

func allowPost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodPost {
		return true
	}
	w.Header().Set("Allow", http.MethodPost)
	server.WriteError(w, r, http.StatusMethodNotAllowed, nserrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{http.MethodPost},
		})
	return false
}

// readBody reads at most maxBodyBytes of the request body. On failure it
// writes the error response and returns false.
func (e *Engine) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if r.Body == nil {
		server.WriteError(w, r, http.StatusBadRequest, nserrors.ErrCodeMalformedInput,
			"Request body is empty", false, nil)
		return nil, false
	}
	defer r.Body.Close()

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, e.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, nserrors.ErrCodeRequestTooLarge,
				"Request body too large", false, map[string]any{
					"limitBytes": tooLarge.Limit,
				})
			return nil, false
		}
		server.WriteError(w, r, http.StatusBadRequest, nserrors.ErrCodeMalformedInput,
			"Failed to read request body", false, map[string]any{
				"error": err.Error(),
			})
		return nil, false
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, nserrors.ErrCodeMalformedInput,
			"Request body is empty", false, nil)
		return nil, false
	}
	return data, true
}

// decodeBody unmarshals data as YAML for YAML media types and as JSON
// otherwise.
func decodeBody(data []byte, contentType string, v any) error {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML body: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON body: %w", err)
		}
	}
	return nil
}
