package models

import (
	"fmt"
	"strings"
)

// GenerationMode - дискриминатор режима генерации.
type GenerationMode string

const (
	// ModePrompt - генерация короткого писательского промпта по ключевым словам.
	ModePrompt GenerationMode = "prompt"
	// ModeStory - генерация полной истории по параметрам.
	ModeStory GenerationMode = "story"
)

// GenerationRequest - сырое тело запроса генерации, как его присылает клиент.
// Это плоская wire-структура; до работы с ней запрос нормализуется в
// GenerationTask, чтобы story-запрос нельзя было молча обработать как prompt.
type GenerationRequest struct {
	Mode             string `json:"mode"`
	Keywords         string `json:"keywords"`
	Genre            string `json:"genre"`
	Theme            string `json:"theme"`
	CharacterType    string `json:"characterType"`
	CharacterName    string `json:"characterName"`
	CharacterDetails string `json:"characterDetails"`
	CustomPrompt     string `json:"customPrompt"`
}

// PromptRequest - валидированный запрос режима prompt.
type PromptRequest struct {
	Keywords string
}

// StoryRequest - валидированный запрос режима story.
type StoryRequest struct {
	Genre            string
	Theme            string
	CharacterType    string
	CharacterName    string
	CharacterDetails string
	CustomPrompt     string
}

// GenerationTask - размеченное объединение двух вариантов запроса.
// Заполнен ровно один из Prompt/Story, соответствующий Mode.
type GenerationTask struct {
	Mode   GenerationMode
	Prompt *PromptRequest
	Story  *StoryRequest
}

// ResolveMode определяет режим по полю mode. Любое значение, кроме "prompt",
// трактуется как story - так вел себя исходный обработчик. Сам по себе выбор
// режима не проверяет обязательные поля: это забота ParseGenerationRequest.
func ResolveMode(req GenerationRequest) GenerationMode {
	if req.Mode == string(ModePrompt) {
		return ModePrompt
	}
	return ModeStory
}

// ParseGenerationRequest нормализует wire-структуру в GenerationTask,
// проверяя обязательные поля выбранного режима. Ошибки заворачивают
// ErrValidation и никогда не приводят к обращению к AI шлюзу.
func ParseGenerationRequest(req GenerationRequest) (GenerationTask, error) {
	mode := ResolveMode(req)

	if mode == ModePrompt {
		keywords := strings.TrimSpace(req.Keywords)
		if keywords == "" {
			return GenerationTask{}, fmt.Errorf("%w: keywords are required for prompt mode", ErrValidation)
		}
		return GenerationTask{
			Mode:   ModePrompt,
			Prompt: &PromptRequest{Keywords: keywords},
		}, nil
	}

	var missing []string
	if strings.TrimSpace(req.Genre) == "" {
		missing = append(missing, "genre")
	}
	if strings.TrimSpace(req.Theme) == "" {
		missing = append(missing, "theme")
	}
	if strings.TrimSpace(req.CharacterType) == "" {
		missing = append(missing, "characterType")
	}
	if len(missing) > 0 {
		return GenerationTask{}, fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}

	return GenerationTask{
		Mode: ModeStory,
		Story: &StoryRequest{
			Genre:            req.Genre,
			Theme:            req.Theme,
			CharacterType:    req.CharacterType,
			CharacterName:    req.CharacterName,
			CharacterDetails: req.CharacterDetails,
			CustomPrompt:     req.CustomPrompt,
		},
	}, nil
}

// PromptResult - успешный ответ режима prompt.
type PromptResult struct {
	Prompt string `json:"prompt"`
}

// StoryResult - успешный ответ режима story. StoryIdea - HTML-фрагмент:
// модель по контракту системного промпта использует <b>/<i>/<u> вместо
// звездочек. Содержимое не валидируется и не санитизируется перед отдачей.
type StoryResult struct {
	StoryIdea string `json:"storyIdea"`
}
