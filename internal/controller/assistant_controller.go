package controller

import (
	"context"
	"errors"

	"ai-writing-assistant/internal/adapter/modeladapter"
	"ai-writing-assistant/internal/dto"
	"ai-writing-assistant/internal/entity"
	"ai-writing-assistant/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// AssistantService is implemented by core.CoreLogic.
type AssistantService interface {
	MetadataFor(ctx context.Context, documentId string) (entity.Metadata, error)
	UpdateMetadata(ctx context.Context, documentId string, record entity.Metadata) error
	ToggleAssistant(ctx context.Context, documentId string) (entity.Metadata, error)
	GenerateQuestionsFor(ctx context.Context, content string) ([]string, error)
	AnalyseForHighlights(ctx context.Context, content string) ([]entity.Highlight, error)
}

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	GetMetadata(ctx *fiber.Ctx) error
	UpdateMetadata(ctx *fiber.Ctx) error
	ToggleAssistant(ctx *fiber.Ctx) error
	GenerateQuestions(ctx *fiber.Ctx) error
	AnalyseHighlights(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistant AssistantService
}

func NewAssistantController(assistant AssistantService) IAssistantController {
	return &assistantController{
		assistant: assistant,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Get("metadata", c.GetMetadata)
	h.Put("metadata", c.UpdateMetadata)
	h.Post("metadata/toggle", c.ToggleAssistant)
	h.Post("questions", c.GenerateQuestions)
	h.Post("highlights", c.AnalyseHighlights)
}

func (c *assistantController) GetMetadata(ctx *fiber.Ctx) error {
	documentId := ctx.Query("document_id")

	m, err := c.assistant.MetadataFor(ctx.UserContext(), documentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show metadata", toMetadataResponse(documentId, m)))
}

func (c *assistantController) UpdateMetadata(ctx *fiber.Ctx) error {
	var req dto.UpdateMetadataRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	record := entity.Metadata{
		AssistantOn: *req.AssistantOn,
		Title:       req.Title,
	}
	if err := c.assistant.UpdateMetadata(ctx.UserContext(), req.DocumentId, record); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update metadata", toMetadataResponse(req.DocumentId, record)))
}

func (c *assistantController) ToggleAssistant(ctx *fiber.Ctx) error {
	var req dto.ToggleAssistantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	m, err := c.assistant.ToggleAssistant(ctx.UserContext(), req.DocumentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle assistant", toMetadataResponse(req.DocumentId, m)))
}

func (c *assistantController) GenerateQuestions(ctx *fiber.Ctx) error {
	var req dto.ContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	questions, err := c.assistant.GenerateQuestionsFor(ctx.UserContext(), req.Content)
	if err != nil {
		return modelError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate questions", dto.QuestionsResponse{Questions: questions}))
}

func (c *assistantController) AnalyseHighlights(ctx *fiber.Ctx) error {
	var req dto.ContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	highlights, err := c.assistant.AnalyseForHighlights(ctx.UserContext(), req.Content)
	if err != nil {
		return modelError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyse highlights", dto.HighlightsResponse{Highlights: highlights}))
}

func toMetadataResponse(documentId string, m entity.Metadata) dto.MetadataResponse {
	return dto.MetadataResponse{
		DocumentId:  documentId,
		AssistantOn: m.AssistantOn,
		Title:       m.Title,
	}
}

// modelError maps model adapter failures to gateway statuses.
func modelError(err error) error {
	var parseErr *modeladapter.ParseError
	switch {
	case errors.Is(err, modeladapter.ErrHighlightsUnsupported):
		return fiber.NewError(fiber.StatusNotImplemented, err.Error())
	case errors.As(err, &parseErr), errors.Is(err, modeladapter.ErrBackend):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return err
	}
}
