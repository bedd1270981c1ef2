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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidAsset indicates an Asset failed validation.
	ErrInvalidAsset = errors.New("invalid asset")

	// ErrInvalidIntent indicates an Intent failed validation.
	ErrInvalidIntent = errors.New("invalid intent")

	// ErrEmptyRef indicates the Ref field is empty.
	ErrEmptyRef = errors.New("asset reference cannot be empty")

	// ErrNegativePrice indicates a negative selling price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidCoordinates indicates a latitude/longitude outside valid bounds,
	// or a pair with only one component set.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrInvalidPriceRange indicates a price range whose min exceeds its max.
	ErrInvalidPriceRange = errors.New("price range min exceeds max")

	// ErrInvalidTriState indicates an unrecognized TriState value.
	ErrInvalidTriState = errors.New("invalid tri-state value")
)
