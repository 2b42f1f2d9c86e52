package http

import (
	"log/slog"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/intent"
	"fulfillment/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// replyUnrecognizedIntent is sent when the display name matches no known
	// intent. The conversation stays open so the user can rephrase.
	replyUnrecognizedIntent = "Sorry, I didn't get that. Can you rephrase?"

	// replyInternalFailure is sent in place of an error status. The NLU
	// platform relays fulfillment text to the user only on HTTP 200, so
	// infrastructure failures surface as an apology rather than a 5xx.
	replyInternalFailure = "Sorry, something went wrong on our side. Please try again."
)

// Server handles webhook HTTP requests from the NLU platform.
// It coordinates between the webhook endpoint and application use cases.
type Server struct {
	// Command handlers
	startOrderHandler    commands.StartOrderCommandHandler
	addItemsHandler      commands.AddItemsCommandHandler
	removeItemsHandler   commands.RemoveItemsCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	// Query handlers
	trackOrderHandler queries.TrackOrderQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	startOrderHandler commands.StartOrderCommandHandler,
	addItemsHandler commands.AddItemsCommandHandler,
	removeItemsHandler commands.RemoveItemsCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		startOrderHandler:    startOrderHandler,
		addItemsHandler:      addItemsHandler,
		removeItemsHandler:   removeItemsHandler,
		completeOrderHandler: completeOrderHandler,
		trackOrderHandler:    trackOrderHandler,
		logger:               logger.With("component", "webhook_server"),
	}
}

// RegisterRoutes attaches the webhook and health endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/", s.HandleWebhook)
	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// HandleWebhook handles POST / - dispatches one utterance to the matching
// use case and replies with fulfillment text.
func (s *Server) HandleWebhook(ctx echo.Context) error {
	var req WebhookRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, WebhookResponse{
			FulfillmentText: "Invalid request body",
		})
	}

	requestID := uuid.NewString()
	sessionKey := req.SessionKey()
	displayName := req.QueryResult.Intent.DisplayName
	matched := intent.Parse(displayName)

	logger := s.logger.With(
		"request_id", requestID,
		"session_key", string(sessionKey),
		"intent", matched.String(),
	)
	logger.InfoContext(ctx.Request().Context(), "Webhook request received")

	reply, err := s.dispatch(ctx, req, matched)
	if err != nil {
		logger.ErrorContext(ctx.Request().Context(), "Webhook request failed", "error", err)
		reply = replyInternalFailure
	}

	return ctx.JSON(http.StatusOK, WebhookResponse{FulfillmentText: reply})
}

// dispatch routes the matched intent to its handler and returns the reply.
func (s *Server) dispatch(ctx echo.Context, req WebhookRequest, matched intent.Intent) (string, error) {
	reqCtx := ctx.Request().Context()
	sessionKey := req.SessionKey()
	parameters := req.QueryResult.Parameters

	switch matched {
	case intent.NewOrder:
		cmd := commands.NewStartOrderCommand(sessionKey)
		return s.startOrderHandler.Handle(reqCtx, cmd)

	case intent.AddToOrder:
		replaceExisting := req.HasActiveContext(intent.NewOrderContextName)
		cmd, err := commands.NewAddItemsCommand(sessionKey, parameters, replaceExisting)
		if err != nil {
			return "", err
		}
		return s.addItemsHandler.Handle(reqCtx, cmd)

	case intent.RemoveFromOrder:
		items := services.StringSlice(parameters[commands.FoodItemParameterKey])
		cmd := commands.NewRemoveItemsCommand(sessionKey, items)
		return s.removeItemsHandler.Handle(reqCtx, cmd)

	case intent.CompleteOrder:
		cmd := commands.NewCompleteOrderCommand(sessionKey)
		return s.completeOrderHandler.Handle(reqCtx, cmd)

	case intent.TrackOrder:
		query, err := queries.NewTrackOrderQuery(parameters)
		if err != nil {
			return "", err
		}
		return s.trackOrderHandler.Handle(reqCtx, query)

	default:
		return replyUnrecognizedIntent, nil
	}
}
