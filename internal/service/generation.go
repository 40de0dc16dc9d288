package service

import (
	"context"

	"story-server/internal/models"

	"go.uber.org/zap"
)

// GenerationOutcome - результат одного запроса генерации.
// Text интерпретируется по Mode: prompt или storyIdea.
type GenerationOutcome struct {
	Mode models.GenerationMode
	Text string
}

// GenerationService оркестрирует один запрос генерации: нормализация и
// валидация входа, сборка инструкций под режим, один вызов AI шлюза.
// Сервис stateless - между запросами ничего не сохраняется.
type GenerationService struct {
	aiClient AIClient
	logger   *zap.Logger
}

// NewGenerationService создает новый GenerationService.
func NewGenerationService(aiClient AIClient, logger *zap.Logger) *GenerationService {
	return &GenerationService{
		aiClient: aiClient,
		logger:   logger.Named("GenerationService"),
	}
}

// Generate выполняет запрос генерации от начала до конца.
// Ошибки валидации возвращаются до какого-либо сетевого вызова.
func (s *GenerationService) Generate(ctx context.Context, req models.GenerationRequest) (GenerationOutcome, error) {
	task, err := models.ParseGenerationRequest(req)
	if err != nil {
		return GenerationOutcome{}, err
	}

	var instr Instructions
	switch task.Mode {
	case models.ModePrompt:
		s.logger.Info("Generating story prompt from keywords",
			zap.Int("keywords_chars", len(task.Prompt.Keywords)))
		instr = BuildPromptInstructions(*task.Prompt)
	default:
		s.logger.Info("Generating story",
			zap.String("genre", task.Story.Genre),
			zap.String("theme", task.Story.Theme),
			zap.String("character_type", task.Story.CharacterType),
		)
		instr = BuildStoryInstructions(*task.Story)
	}

	text, err := s.aiClient.GenerateText(ctx, instr)
	if err != nil {
		return GenerationOutcome{}, err
	}

	s.logger.Info("Generation succeeded", zap.String("mode", string(task.Mode)))
	return GenerationOutcome{Mode: task.Mode, Text: text}, nil
}
