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


// Package search provides constraint-gated ranking over stored listings.
//
// The Searcher type implements a multi-stage pipeline that combines:
//   - Structured intent extraction from the free-form query
//   - Semantic retrieval using vector embeddings
//   - Per-candidate data quality assessment and constraint scoring
//   - A weighted blend of intent, semantic and lifestyle components
//
// Listings that fail a hard constraint are dropped rather than downranked,
// and a final quality gate returns an honest empty result when even the
// best survivor scores below the configured floor.
package search
