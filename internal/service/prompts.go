package service

import (
	"fmt"
	"strings"

	"story-server/internal/models"
)

// Instructions - пара (системный, пользовательский) промпт для AI шлюза.
type Instructions struct {
	System string
	User   string
}

// Системные промпты фиксированы: именно они несут контракт форматирования
// (HTML-теги для выделения, никаких звездочек), благодаря которому ответ
// модели можно отдавать клиенту как разметку без отдельного прохода.

const promptModeSystem = `You are a creative writing assistant specializing in generating compelling story prompts. Create detailed, inspiring story prompts that spark imagination. Each prompt should be vivid, specific, and give clear direction while leaving room for creativity.

CRITICAL FORMATTING RULES:
- NEVER use asterisks (*) for any formatting
- Use HTML tags for text formatting: <b></b> for bold, <i></i> for italic, <u></u> for underline
- Apply rich formatting for emphasis and style`

const storyModeSystem = `You are a creative storyteller. Write complete, original stories with a beginning, middle, and end. Each story should:
1. Have unique, well-developed characters
2. Include vivid descriptions and settings
3. Build tension and conflict naturally
4. Conclude with a satisfying ending
5. Be engaging and imaginative

Write stories between 400-600 words.

CRITICAL FORMATTING RULES:
- NEVER use asterisks (*) for any formatting whatsoever
- Use HTML tags for text formatting: <b></b> for bold, <i></i> for italic, <u></u> for underline
- Apply rich formatting throughout the story for emphasis and style
- Make every story completely unique and original`

// BuildPromptInstructions строит инструкции режима prompt.
// Ключевые слова встраиваются в пользовательский промпт дословно, один раз.
func BuildPromptInstructions(req models.PromptRequest) Instructions {
	user := fmt.Sprintf(`Generate an impressive, detailed story writing prompt based on these keywords: "%s"

Create a compelling prompt that includes:
- An intriguing premise or situation
- Potential character dynamics
- Atmospheric setting suggestions
- A hook or conflict to explore

Make it inspiring and specific enough to guide the writer, but open enough for creative interpretation. Keep it between 100-150 words.`, req.Keywords)

	return Instructions{System: promptModeSystem, User: user}
}

// BuildStoryInstructions строит инструкции режима story.
// Три обязательных параметра идут помеченными строками в фиксированном
// порядке; необязательные добавляются только если поле непустое, строго
// в порядке имя -> детали -> направление.
func BuildStoryInstructions(req models.StoryRequest) Instructions {
	var b strings.Builder

	fmt.Fprintf(&b, `Write a complete, original story with these parameters:
Genre: %s
Theme: %s
Character Type: %s`, req.Genre, req.Theme, req.CharacterType)

	if req.CharacterName != "" {
		fmt.Fprintf(&b, "\nCharacter Name: %s", req.CharacterName)
	}
	if req.CharacterDetails != "" {
		fmt.Fprintf(&b, "\nCharacter Details: %s", req.CharacterDetails)
	}
	if req.CustomPrompt != "" {
		fmt.Fprintf(&b, "\n\nAdditional Story Direction: %s", req.CustomPrompt)
	}

	b.WriteString("\n\nCreate a fully developed story with unique characters, an engaging plot, and a conclusive ending. Make it vivid and compelling.")

	return Instructions{System: storyModeSystem, User: b.String()}
}
