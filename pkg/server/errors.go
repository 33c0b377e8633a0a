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

package server

import (
	"errors"
	"net/http"
	"time"

	nserrors "github.com/mountainkid/nutriscore/pkg/errors"
	"github.com/mountainkid/nutriscore/pkg/serializer"

	"github.com/google/uuid"
)

// ErrorResponse is the JSON body of every error returned by the API.
type ErrorResponse struct {
	Code      string         `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// WriteError writes an ErrorResponse with the given status code.
// The request ID is taken from the request context when present.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code nserrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr maps err to a status code and ErrorResponse.
// StructuredErrors keep their code, message and context; anything else is
// reported as INTERNAL with fallbackMessage. The cause, if any, is added
// to details under "error".
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *nserrors.StructuredError
	if errors.As(err, &se) && se != nil {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			if details == nil {
				details = map[string]any{}
			}
			details["error"] = se.Cause.Error()
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message, retryableFromCode(se.Code), details)
		return
	}

	details := mergeDetails(nil, extraDetails)
	if err != nil {
		if details == nil {
			details = map[string]any{}
		}
		details["error"] = err.Error()
	}
	WriteError(w, r, http.StatusInternalServerError, nserrors.ErrCodeInternal, fallbackMessage, true, details)
}

// HTTPStatusFromCode returns the HTTP status used for code.
func HTTPStatusFromCode(code nserrors.ErrorCode) int {
	switch code {
	case nserrors.ErrCodeInvalidRequest, nserrors.ErrCodeMalformedInput:
		return http.StatusBadRequest
	case nserrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case nserrors.ErrCodeNotFound:
		return http.StatusNotFound
	case nserrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case nserrors.ErrCodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge
	case nserrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case nserrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case nserrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case nserrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code nserrors.ErrorCode) bool {
	switch code {
	case nserrors.ErrCodeTimeout, nserrors.ErrCodeUnavailable, nserrors.ErrCodeRateLimitExceeded, nserrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
