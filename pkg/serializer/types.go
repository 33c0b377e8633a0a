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

// Package serializer reads and writes nutriscore documents in JSON, YAML
// and table form.
//
// Writers back the CLI output (score results, benchmark reports); readers
// load meal batches from files or stdin; RespondJSON writes buffered JSON
// HTTP responses for the API.
//
// Usage:
//
//	w, err := serializer.NewFileWriter(serializer.FormatYAML, path)
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//		return err
//	}
//
// Reading a batch:
//
//	meals, err := serializer.FromFile[[]scoring.Meal]("meals.yaml")
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
package serializer

import "context"

// Serializer writes a document to its configured destination.
type Serializer interface {
	Serialize(ctx context.Context, doc any) error
}
