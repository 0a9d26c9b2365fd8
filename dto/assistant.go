package dto

import "taskmaster/usecase"

type AssistantParseRequest struct {
	Message string             `json:"message" binding:"required"`
	History []usecase.ChatTurn `json:"history" binding:"omitempty,dive"`
}

type AssistantParseResponse struct {
	Drafts []usecase.DraftTask `json:"drafts"`
}
