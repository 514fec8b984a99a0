// Package grpc exposes the inventory service over gRPC.
package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/service"
	"github.com/abgdnv/inventory/internal/store"
	pb "github.com/abgdnv/inventory/pkg/api/gen/go/inventory/v1"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ pb.InventoryServiceServer = (*Server)(nil)

type Server struct {
	// Embed the unimplemented server for forward compatibility
	pb.UnimplementedInventoryServiceServer
	service service.InventoryService
	logger  *slog.Logger
}

func NewServer(service service.InventoryService, logger *slog.Logger) *Server {
	return &Server{service: service, logger: logger}
}

func (s *Server) CreateProduct(ctx context.Context, req *pb.CreateProductRequest) (*pb.Product, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid price: %q", req.Price)
	}
	created, err := s.service.CreateProduct(ctx, service.ProductCreate{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    price,
	})
	if err != nil {
		return nil, s.toStatus(ctx, "CreateProduct", err)
	}
	return toProduct(created), nil
}

func (s *Server) GetProduct(ctx context.Context, req *pb.GetProductRequest) (*pb.Product, error) {
	id, err := parseID(req.Id)
	if err != nil {
		return nil, err
	}
	product, err := s.service.GetProduct(ctx, id)
	if err != nil {
		return nil, s.toStatus(ctx, "GetProduct", err)
	}
	return toProduct(product), nil
}

func (s *Server) ListProducts(ctx context.Context, req *pb.ListProductsRequest) (*pb.ListProductsResponse, error) {
	if req.Page < 0 || req.Size <= 0 {
		return nil, status.Errorf(codes.InvalidArgument, "invalid page %d or size %d", req.Page, req.Size)
	}
	page, err := s.service.ListProducts(ctx, req.Page, req.Size)
	if err != nil {
		return nil, s.toStatus(ctx, "ListProducts", err)
	}
	return &pb.ListProductsResponse{
		Products:   toProducts(page.Items),
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}, nil
}

func (s *Server) SearchProducts(ctx context.Context, req *pb.SearchProductsRequest) (*pb.SearchProductsResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, status.Error(codes.InvalidArgument, "query must not be blank")
	}
	products, err := s.service.SearchProducts(ctx, req.Query)
	if err != nil {
		return nil, s.toStatus(ctx, "SearchProducts", err)
	}
	return &pb.SearchProductsResponse{Products: toProducts(products)}, nil
}

func (s *Server) UpdateQuantity(ctx context.Context, req *pb.UpdateQuantityRequest) (*pb.Product, error) {
	id, err := parseID(req.Id)
	if err != nil {
		return nil, err
	}
	updated, err := s.service.UpdateQuantity(ctx, id, req.Quantity)
	if err != nil {
		return nil, s.toStatus(ctx, "UpdateQuantity", err)
	}
	return toProduct(updated), nil
}

func (s *Server) DeleteProduct(ctx context.Context, req *pb.DeleteProductRequest) (*pb.DeleteProductResponse, error) {
	id, err := parseID(req.Id)
	if err != nil {
		return nil, err
	}
	if err := s.service.DeleteProduct(ctx, id); err != nil {
		return nil, s.toStatus(ctx, "DeleteProduct", err)
	}
	return &pb.DeleteProductResponse{}, nil
}

func (s *Server) GetSummary(ctx context.Context, _ *pb.GetSummaryRequest) (*pb.GetSummaryResponse, error) {
	summary, err := s.service.GetSummary(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "GetSummary", err)
	}
	outOfStock := make([]*pb.ProductRef, 0, len(summary.OutOfStock))
	for _, ref := range summary.OutOfStock {
		outOfStock = append(outOfStock, &pb.ProductRef{Id: ref.ID.String(), Name: ref.Name})
	}
	return &pb.GetSummaryResponse{
		TotalProducts: int32(summary.TotalProducts),
		TotalQuantity: summary.TotalQuantity,
		AveragePrice:  summary.AveragePrice.StringFixed(service.AveragePriceScale),
		OutOfStock:    outOfStock,
	}, nil
}

// toStatus maps service errors to gRPC status codes. Unexpected errors are logged and hidden.
func (s *Server) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, perrors.ErrProductNotFound):
		return status.Error(codes.NotFound, perrors.ErrProductNotFound.Error())
	case errors.Is(err, perrors.ErrDuplicateName):
		return status.Error(codes.AlreadyExists, perrors.ErrDuplicateName.Error())
	case errors.Is(err, perrors.ErrInvalidQuantity),
		errors.Is(err, perrors.ErrInvalidPrice),
		errors.Is(err, perrors.ErrInvalidName):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, perrors.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, perrors.ErrStoreUnavailable.Error())
	default:
		s.logger.ErrorContext(ctx, "gRPC request failed", "method", method, "error", err)
		return status.Error(codes.Internal, "internal server error")
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid product ID: %q", raw)
	}
	return id, nil
}

func toProduct(p *store.Product) *pb.Product {
	return &pb.Product{
		Id:        p.ID.String(),
		Name:      p.Name,
		Quantity:  p.Quantity,
		Price:     p.Price.String(),
		CreatedAt: timestamppb.New(p.CreatedAt),
		UpdatedAt: timestamppb.New(p.UpdatedAt),
	}
}

func toProducts(products []store.Product) []*pb.Product {
	out := make([]*pb.Product, 0, len(products))
	for i := range products {
		out = append(out, toProduct(&products[i]))
	}
	return out
}
