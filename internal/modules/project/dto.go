package project

import "designhub/internal/domain"

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Status      string  `json:"status"`
	ClientIDs   []int64 `json:"client_ids"`
	DesignerIDs []int64 `json:"designer_ids"`
}

type ListFilter struct {
	Status      string  `form:"status"`
	Name        string  `form:"name"`
	DesignerIDs []int64 `form:"designer_ids[]"`
	ClientIDs   []int64 `form:"client_ids[]"`
}

type MemberSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ListResponse struct {
	Projects        []domain.Project `json:"projects"`
	FilterDesigners []MemberSummary  `json:"filter_designers,omitempty"`
	FilterClients   []MemberSummary  `json:"filter_clients,omitempty"`
}

// View models for the per-project aggregation payload.

type ProductViewModel struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Price         *float64 `json:"price"`
	Link          string   `json:"link,omitempty"`
	Quantity      *int     `json:"quantity"`
	Status        string   `json:"status"`
	CommentsCount int64    `json:"comments_count"`
}

type PendingProductOptionViewModel struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
	Link  string   `json:"link,omitempty"`
}

type PendingProductViewModel struct {
	ID            int64                           `json:"id"`
	Name          string                          `json:"name"`
	Quantity      *int                            `json:"quantity"`
	CommentsCount int64                           `json:"comments_count"`
	Options       []PendingProductOptionViewModel `json:"options"`
}

type RoomViewModel struct {
	Name                string                    `json:"name"`
	RoomID              *int64                    `json:"room_id"`
	CommentsCount       int64                     `json:"comments_count"`
	Total               float64                   `json:"total"`
	PlanURL             *string                   `json:"plan_url"`
	PlanWithProductsURL *string                   `json:"plan_with_products_url"`
	Products            []ProductViewModel        `json:"products"`
	PendingProducts     []PendingProductViewModel `json:"pending_products"`
}

type ShowResponse struct {
	Project      domain.Project  `json:"project"`
	RoomsData    []RoomViewModel `json:"rooms_data"`
	ProjectTotal float64         `json:"project_total"`
	DesignerFor  bool            `json:"designer_for_project"`
	ClientFor    bool            `json:"client_for_project"`
}
