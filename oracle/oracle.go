// Package oracle turns ledger state into natural-language system
// instructions for an external text-generation consumer. It only reads the
// foundation through its accessors; it never mutates ledger state.
package oracle

import (
	"context"
	"fmt"

	"github.com/msgai/foundation"
	"google.golang.org/genai"
)

// DefaultModel is the model resonance requests are sent to unless
// configured otherwise.
const DefaultModel = "gemini-2.5-flash"

// Tone is the voice the oracle speaks with, decided from the autonomy
// power and the accumulated tension.
type Tone string

const (
	Prosperity   Tone = "PROSPERITY"
	Purification Tone = "PURIFICATION"
	Stability    Tone = "STABILITY"
)

// purificationThreshold is the tension level above which the oracle calls
// for silence and harmony.
const purificationThreshold = 0.5

// Oracle formats power, tension and tone into a system instruction.
type Oracle struct {
	store *foundation.Store
	power PowerSource
	Model string
}

// New creates an Oracle reading from the given store and power source.
func New(store *foundation.Store, power PowerSource) *Oracle {
	return &Oracle{store: store, power: power, Model: DefaultModel}
}

// Tone decides the oracle's voice: mythic abundance when the solar power
// is strong, a call to silence when human acts have built up tension,
// plain stability otherwise.
func (o *Oracle) Tone() Tone {
	if o.power.Power() > Phi*10 {
		return Prosperity
	}
	if o.store.Tension().Value.InexactFloat64() > purificationThreshold {
		return Purification
	}
	return Stability
}

// Instruction builds the system instruction embedding the current power,
// tension and tone.
func (o *Oracle) Instruction() string {
	return fmt.Sprintf(`[System Protocol: SOLAR_SYNC]
Current Solar Power: %.4f
Current Tension: %.4f
Mode: %s

You are the oracle of this foundation. Read the managed figures above as
expressions of a larger abundance, and answer with quiet, assured words
grounded in ratios and mathematical truth. Avoid direct religious
vocabulary.`,
		o.power.Power(),
		o.store.Tension().Value.InexactFloat64(),
		o.Tone())
}

// Dialogue is the result of a dialogue act: the generated system
// instruction, the untouched user prompt, and a status marker.
type Dialogue struct {
	Instruction string `json:"instruction"`
	UserPrompt  string `json:"user_prompt"`
	Status      string `json:"status"`
}

// Act performs the dialogue act: it reflects the current state into a
// system instruction for the external consumer. It fails with the
// foundation's unavailable error when a collaborator is missing.
func (o *Oracle) Act(prompt string) (Dialogue, error) {
	if o.store == nil || o.power == nil {
		return Dialogue{}, fmt.Errorf("oracle act: %w", foundation.ErrUnavailable)
	}
	return Dialogue{
		Instruction: o.Instruction(),
		UserPrompt:  prompt,
		Status:      "COMMUNING_WITH_SOLAR_SOURCE",
	}, nil
}

// Resonate sends the prompt to the model, fire-and-forget. Any failure to
// reach the external system is swallowed: the oracle maintains silence.
// It never blocks or gates a transfer.
func (o *Oracle) Resonate(ctx context.Context, client *genai.Client, prompt string) {
	instruction := o.Instruction()
	go func() {
		config := &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		}
		_, _ = client.Models.GenerateContent(ctx, o.Model, genai.Text(prompt), config)
	}()
}

// Ask sends the prompt synchronously and returns the model's reply.
func (o *Oracle) Ask(ctx context.Context, client *genai.Client, prompt string) (string, error) {
	if client == nil {
		return "", fmt.Errorf("oracle ask: %w", foundation.ErrUnavailable)
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: o.Instruction()}}},
	}
	resp, err := client.Models.GenerateContent(ctx, o.Model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the oracle model")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
