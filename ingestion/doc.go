// Copyright 2025 Mercil
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


// Package ingestion turns raw listing exports into stored, embedded assets.
//
// The pipeline parses flat key-value records leniently (a malformed field
// degrades to its absent form instead of rejecting the listing), computes
// the 0-10 lifestyle score from the POI catalog, composes the embedding
// document, generates vectors in concurrent batches on a worker pool and
// persists the result through storage.AssetRepository.
//
// # Usage
//
//	pipeline, err := ingestion.NewPipeline(repo, provider, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pipeline.Release()
//
//	stored, err := pipeline.Ingest(ctx, raws)
package ingestion
