package prompt

import (
	"fmt"
	"strings"

	"storyteller/internal/models"
)

// RandomPromptInstruction asks the model for a single line that can be dropped
// into the idea field.
const RandomPromptInstruction = "Generate a unique and creative story prompt, focusing on a main character, " +
	"a unique setting, and an interesting conflict. Provide the response as a simple string, " +
	"suitable for a text input field."

// JSONResponseInstruction closes every story instruction.
const JSONResponseInstruction = ` Provide the response as a JSON object with two fields: "title" (string) and "story" (string).`

type field struct {
	sentence string
	value    func(models.StoryRequestParams) string
}

// Order matters: idea, character, setting, conflict.
var storyFields = []field{
	{sentence: ` The core idea is: "%s".`, value: func(p models.StoryRequestParams) string { return p.Idea }},
	{sentence: ` The main character is: "%s".`, value: func(p models.StoryRequestParams) string { return p.Character }},
	{sentence: ` The setting is: "%s".`, value: func(p models.StoryRequestParams) string { return p.Setting }},
	{sentence: ` The central conflict is: "%s".`, value: func(p models.StoryRequestParams) string { return p.Conflict }},
}

// BuildStoryInstruction renders params into the instruction sent for a full
// story. Blank fields produce no sentence; others are quoted as typed.
func BuildStoryInstruction(params models.StoryRequestParams) string {
	params = params.WithDefaults()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a %s creative story with a %s tone.", params.Length, params.Tone)
	for _, f := range storyFields {
		v := f.value(params)
		if strings.TrimSpace(v) == "" {
			continue
		}
		fmt.Fprintf(&sb, f.sentence, v)
	}
	sb.WriteString(JSONResponseInstruction)
	return sb.String()
}
