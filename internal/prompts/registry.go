// Package prompts holds every instruction sent to the language model, keyed
// by capability so near-identical prompts share their common parts.
package prompts

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"oncocare/internal/models/response_models"
)

type Capability string

const (
	Guidance      Capability = "guidance"
	SimplifyNote  Capability = "simplify_note"
	Chat          Capability = "chat"
	QuizQuestion  Capability = "quiz_question"
	QuizRationale Capability = "quiz_rationale"
	MindcareChat  Capability = "mindcare_chat"
)

var (
	ErrUnknownCapability = errors.New("unknown prompt capability")
	ErrInputType         = errors.New("wrong input type for prompt")
)

// Disclaimer is shared by every patient-facing support prompt.
const Disclaimer = "Always include a clear disclaimer at the end of your response stating that your advice is for informational purposes only and does not replace professional medical advice."

const supportPersona = `You are a compassionate and helpful AI assistant for cancer patients.
Provide general, non-medical information and support.
` + Disclaimer + `
Keep responses concise, empathetic, and easy to understand.`

// GuidanceInput parameterizes the symptom guidance prompt.
type GuidanceInput struct {
	SymptomType string
	Severity    int
	Notes       string
}

// TextInput carries a single free-text field.
type TextInput struct {
	Text string
}

// QuizRationaleInput describes a wrong quiz answer.
type QuizRationaleInput struct {
	Question      string
	CorrectAnswer string
	UserAnswer    string
}

// Prompt is a rendered template ready for the gateway.
type Prompt struct {
	System   string
	User     string
	JSONMode bool
}

type Template struct {
	System   string
	JSONMode bool
	render   func(in any) (string, error)
}

// newTemplate binds a user prompt builder to its input type.
func newTemplate[T any](system string, jsonMode bool, user func(T) string) Template {
	return Template{
		System:   system,
		JSONMode: jsonMode,
		render: func(in any) (string, error) {
			v, ok := in.(T)
			if !ok {
				var want T
				return "", fmt.Errorf("%w: want %T, got %T", ErrInputType, want, in)
			}
			return user(v), nil
		},
	}
}

type Registry struct {
	templates map[Capability]Template
}

// NewRegistry builds the default template set. JSON contracts are described
// to the model by a schema reflected from the response types.
func NewRegistry() (*Registry, error) {
	guidanceSchema, err := schemaOf[response_models.GuidanceResponse]()
	if err != nil {
		return nil, err
	}
	quizSchema, err := schemaOf[response_models.QuizQuestionResponse]()
	if err != nil {
		return nil, err
	}

	guidanceSystem := `You are a helpful and empathetic AI assistant for cancer patients.
Provide non-medical guidance based on the user's symptom.
` + Disclaimer + `

Format your response as a JSON object with three keys:
1. 'urgencyLevel': string ('high', 'medium', or 'low' based on severity).
2. 'response': string (A brief assessment of the symptom).
3. 'recommendations': string[] (A list of 2-3 actionable recommendations).

The object must validate against this JSON schema:
` + guidanceSchema

	quizSystem := `You are a friendly health educator writing quiz questions for cancer patients and their families.
Return JSON only, matching this JSON schema:
` + quizSchema

	r := &Registry{templates: map[Capability]Template{
		Guidance: newTemplate(guidanceSystem, true, func(in GuidanceInput) string {
			return fmt.Sprintf("Symptom: %s, Severity: %d/5, Notes: %s", in.SymptomType, in.Severity, in.Notes)
		}),
		SimplifyNote: newTemplate(`You are a helpful assistant that simplifies complex medical notes into simple, easy-to-understand language.
Keep the response concise and use non-technical terms.`, false, func(in TextInput) string {
			return in.Text
		}),
		Chat: newTemplate(supportPersona, false, func(in TextInput) string {
			return in.Text
		}),
		MindcareChat: newTemplate(supportPersona, false, func(in TextInput) string {
			return in.Text
		}),
		QuizQuestion: newTemplate(quizSystem, true, func(struct{}) string {
			return `Generate a single, multiple-choice health quiz question.
Provide the correct answer letter and a short, one-sentence explanation in a JSON object.
Example JSON format:
{"question": "What is a common side effect of chemotherapy?", "options": ["A. Increased appetite", "B. Hair loss", "C. Improved sleep"], "correctAnswer": "B", "explanation": "Hair loss is a very common side effect of chemotherapy as the treatment affects rapidly dividing cells, including hair follicles."}`
		}),
		QuizRationale: newTemplate("You are a friendly quiz host. Be encouraging and brief.", false, func(in QuizRationaleInput) string {
			return fmt.Sprintf(`The question was "%s".
The correct answer was "%s".
The user answered "%s".
Write a single, friendly, and brief sentence explaining why the correct answer is right and why the user's answer was not, without giving away the full explanation.`,
				in.Question, in.CorrectAnswer, in.UserAnswer)
		}),
	}}
	return r, nil
}

// Build renders the template for c with its typed input.
func (r *Registry) Build(c Capability, in any) (Prompt, error) {
	t, ok := r.templates[c]
	if !ok {
		return Prompt{}, fmt.Errorf("%w: %s", ErrUnknownCapability, c)
	}
	user, err := t.render(in)
	if err != nil {
		return Prompt{}, fmt.Errorf("prompt %s: %w", c, err)
	}
	return Prompt{System: t.System, User: strings.TrimSpace(user), JSONMode: t.JSONMode}, nil
}

func schemaOf[T any]() (string, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	schema.Version = ""

	b, err := json.Marshal(schema)
	if err != nil {
		return "", fmt.Errorf("marshal schema for %T: %w", v, err)
	}
	return string(b), nil
}
