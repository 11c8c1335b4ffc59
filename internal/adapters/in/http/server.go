package http

import (
	"errors"
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
// It exposes the shop's write operations through command handlers and its
// read operations through query handlers.
type Server struct {
	// Command handlers
	registerMemberHandler commands.RegisterMemberCommandHandler
	addItemHandler        commands.AddItemCommandHandler
	updateItemHandler     commands.UpdateItemCommandHandler
	placeOrderHandler     commands.PlaceOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler

	// Query handlers
	getAllMembersHandler queries.GetAllMembersQueryHandler
	getAllItemsHandler   queries.GetAllItemsQueryHandler
	findOrdersHandler    queries.FindOrdersQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerMemberHandler commands.RegisterMemberCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	updateItemHandler commands.UpdateItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getAllMembersHandler queries.GetAllMembersQueryHandler,
	getAllItemsHandler queries.GetAllItemsQueryHandler,
	findOrdersHandler queries.FindOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		registerMemberHandler: registerMemberHandler,
		addItemHandler:        addItemHandler,
		updateItemHandler:     updateItemHandler,
		placeOrderHandler:     placeOrderHandler,
		cancelOrderHandler:    cancelOrderHandler,
		getAllMembersHandler:  getAllMembersHandler,
		getAllItemsHandler:    getAllItemsHandler,
		findOrdersHandler:     findOrdersHandler,
		getOrderHandler:       getOrderHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/members", s.RegisterMember)
	api.GET("/members", s.GetMembers)

	api.POST("/items", s.AddItem)
	api.PUT("/items/:id", s.UpdateItem)
	api.GET("/items", s.GetItems)

	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
}

// Error is the uniform error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewMember is the request body for member registration.
type NewMember struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

// NewItem is the request body for adding a catalog item.
// Kind selects the item variant; the detail fields that do not apply to the
// kind are ignored.
type NewItem struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Stock    int    `json:"stock"`
	Kind     string `json:"kind"`
	Author   string `json:"author,omitempty"`
	ISBN     string `json:"isbn,omitempty"`
	Artist   string `json:"artist,omitempty"`
	Director string `json:"director,omitempty"`
	Actor    string `json:"actor,omitempty"`
}

// ItemUpdate is the request body for changing an item's name, price or stock.
type ItemUpdate struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Stock int    `json:"stock"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	MemberID string `json:"member_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Created is returned by endpoints that create a new resource.
type Created struct {
	ID string `json:"id"`
}

// Member is the response representation of a registered member.
type Member struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

// Item is the response representation of a catalog item.
type Item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Stock int    `json:"stock"`
	Kind  string `json:"kind"`
}

// OrderSummary is the response representation of an order in list views.
type OrderSummary struct {
	ID         string `json:"id"`
	MemberName string `json:"member_name"`
	Status     string `json:"status"`
	TotalPrice int    `json:"total_price"`
	OrderedAt  string `json:"ordered_at"`
}

// OrderDetails is the full response representation of a single order.
type OrderDetails struct {
	ID             string      `json:"id"`
	MemberName     string      `json:"member_name"`
	Status         string      `json:"status"`
	DeliveryStatus string      `json:"delivery_status"`
	OrderedAt      string      `json:"ordered_at"`
	TotalPrice     int         `json:"total_price"`
	LineItems      []OrderLine `json:"line_items"`
}

// OrderLine is a single purchased position within OrderDetails.
type OrderLine struct {
	ItemID    string `json:"item_id"`
	ItemName  string `json:"item_name"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// RegisterMember handles POST /api/v1/members - registers a new member.
func (s *Server) RegisterMember(ctx echo.Context) error {
	var newMember NewMember
	if err := ctx.Bind(&newMember); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	address, err := kernel.NewAddress(newMember.City, newMember.Street, newMember.Zipcode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid member data: " + err.Error(),
		})
	}

	memberID := kernel.NewUUID()
	cmd, err := commands.NewRegisterMemberCommand(memberID, newMember.Name, address)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid member data: " + err.Error(),
		})
	}

	if handleErr := s.registerMemberHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to register member")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: memberID.String()})
}

// GetMembers handles GET /api/v1/members - retrieves all registered members.
func (s *Server) GetMembers(ctx echo.Context) error {
	query := queries.NewGetAllMembersQuery()

	members, err := s.getAllMembersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve members",
		})
	}

	response := make([]Member, len(members))
	for i, m := range members {
		response[i] = Member{
			ID:      m.ID.String(),
			Name:    m.Name,
			City:    m.City,
			Street:  m.Street,
			Zipcode: m.Zipcode,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddItem handles POST /api/v1/items - adds a new catalog item.
func (s *Server) AddItem(ctx echo.Context) error {
	var newItem NewItem
	if err := ctx.Bind(&newItem); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	kind, err := item.KindFromString(newItem.Kind)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item data: " + err.Error(),
		})
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddItemCommand(itemID, newItem.Name, newItem.Price, newItem.Stock, kind,
		item.Details{
			Author:   newItem.Author,
			ISBN:     newItem.ISBN,
			Artist:   newItem.Artist,
			Director: newItem.Director,
			Actor:    newItem.Actor,
		})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item data: " + err.Error(),
		})
	}

	if handleErr := s.addItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to add item")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: itemID.String()})
}

// UpdateItem handles PUT /api/v1/items/:id - changes an item's name, price and stock.
func (s *Server) UpdateItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item id",
		})
	}

	var update ItemUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateItemCommand(itemID, update.Name, update.Price, update.Stock)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item data: " + err.Error(),
		})
	}

	if handleErr := s.updateItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to update item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetItems handles GET /api/v1/items - retrieves the catalog.
func (s *Server) GetItems(ctx echo.Context) error {
	query := queries.NewGetAllItemsQuery()

	items, err := s.getAllItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve items",
		})
	}

	response := make([]Item, len(items))
	for i, it := range items {
		response[i] = Item{
			ID:    it.ID.String(),
			Name:  it.Name,
			Price: it.Price,
			Stock: it.Stock,
			Kind:  it.Kind,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	memberID, err := kernel.UUIDFromString(newOrder.MemberID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid member id",
		})
	}

	itemID, err := kernel.UUIDFromString(newOrder.ItemID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item id",
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, memberID, itemID, newOrder.Quantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels a placed order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - retrieves orders, optionally
// filtered by member name and order status query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	status := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid status filter",
			})
		}
		status = parsed
	}

	query, err := queries.NewFindOrdersQuery(ctx.QueryParam("member"), status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order filter: " + err.Error(),
		})
	}

	orders, err := s.findOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:         o.ID.String(),
			MemberName: o.MemberName,
			Status:     o.Status,
			TotalPrice: o.TotalPrice,
			OrderedAt:  o.OrderedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order with
// its delivery state and line items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve order")
	}

	lineItems := make([]OrderLine, len(details.LineItems))
	for i, li := range details.LineItems {
		lineItems[i] = OrderLine{
			ItemID:    li.ItemID.String(),
			ItemName:  li.ItemName,
			UnitPrice: li.UnitPrice,
			Quantity:  li.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, OrderDetails{
		ID:             details.ID.String(),
		MemberName:     details.MemberName,
		Status:         details.Status,
		DeliveryStatus: details.DeliveryStatus,
		OrderedAt:      details.OrderedAt.Format("2006-01-02T15:04:05Z07:00"),
		TotalPrice:     details.TotalPrice,
		LineItems:      lineItems,
	})
}

// writeError maps application errors to HTTP status codes. Missing
// aggregates map to 404, business rule conflicts to 409, everything else
// to 500.
func (s *Server) writeError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, item.ErrInsufficientStock),
		errors.Is(err, order.ErrDeliveryAlreadyCompleted),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, commands.ErrMemberAlreadyExists):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
