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


package scoring

// SignalKind classifies a scoring signal.
type SignalKind string

const (
	// SignalPositive contributed points.
	SignalPositive SignalKind = "positive"
	// SignalNegative cost points.
	SignalNegative SignalKind = "negative"
	// SignalWarning is informational: something could not be verified.
	// Warnings never change the score.
	SignalWarning SignalKind = "warning"
)

// Signal is one structured scoring decision. Rendering signals into
// prose is a presentation concern and happens outside the engine.
type Signal struct {
	Kind    SignalKind
	Message string
	// Delta is the score contribution; zero for warnings.
	Delta float64
}

// Result is the outcome of scoring one asset against one intent. A
// disqualified result has Score 0 and a Reason; soft signals collected
// before the failing gate are preserved for explainability.
type Result struct {
	Score        float64
	Disqualified bool
	Reason       string
	Positive     []Signal
	Negative     []Signal
	// Breakdown accumulates score deltas per gate, keyed by gate name.
	Breakdown map[string]float64
	Quality   *QualityReport
}

func newResult(quality *QualityReport) *Result {
	return &Result{
		Breakdown: make(map[string]float64),
		Quality:   quality,
	}
}

func (r *Result) addPositive(gate, message string, delta float64) {
	r.Score += delta
	r.Positive = append(r.Positive, Signal{Kind: SignalPositive, Message: message, Delta: delta})
	r.Breakdown[gate] += delta
}

func (r *Result) addNegative(gate, message string, delta float64) {
	r.Score += delta
	r.Negative = append(r.Negative, Signal{Kind: SignalNegative, Message: message, Delta: delta})
	r.Breakdown[gate] += delta
}

func (r *Result) addWarning(message string) {
	r.Negative = append(r.Negative, Signal{Kind: SignalWarning, Message: message})
}

// disqualify freezes the result: the score is zeroed and no later gate
// can rescue it.
func (r *Result) disqualify(reason string) *Result {
	r.Score = 0
	r.Disqualified = true
	r.Reason = reason
	return r
}
