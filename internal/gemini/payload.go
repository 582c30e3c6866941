package gemini

import "google.golang.org/genai"

// Flow identifies which user action a request belongs to.
type Flow string

const (
	FlowStory        Flow = "story"
	FlowRandomPrompt Flow = "random_prompt"
)

// FallbackMessage is reported when the proxy fails without saying why.
func (f Flow) FallbackMessage() string {
	switch f {
	case FlowRandomPrompt:
		return "Failed to generate random prompt from AI."
	default:
		return "Failed to fetch story from AI."
	}
}

// Request is the body posted to the proxy. The proxy forwards it verbatim to
// the generateContent endpoint of the provider.
type Request struct {
	Contents         []*genai.Content        `json:"contents"`
	GenerationConfig *genai.GenerationConfig `json:"generationConfig,omitempty"`

	Flow Flow `json:"-"`
}

// storySchema constrains the model to a {title, story} object.
func storySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {Type: genai.TypeString},
			"story": {Type: genai.TypeString},
		},
		PropertyOrdering: []string{"title", "story"},
	}
}

// NewStoryPayload wraps a story instruction and asks for a JSON answer.
func NewStoryPayload(instruction string) *Request {
	return &Request{
		Contents: genai.Text(instruction),
		GenerationConfig: &genai.GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   storySchema(),
		},
		Flow: FlowStory,
	}
}

// NewPromptPayload wraps an instruction whose answer is plain text.
func NewPromptPayload(instruction string) *Request {
	return &Request{
		Contents: genai.Text(instruction),
		Flow:     FlowRandomPrompt,
	}
}

type errorEnvelope struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}
