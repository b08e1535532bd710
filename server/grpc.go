package server

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ratewall/ratewall"
	"github.com/ratewall/ratewall/api/ratewallpb"
)

// GRPCServer implements ratewallpb.RateLimiterServiceServer on top of the
// same service the HTTP handler uses.
type GRPCServer struct {
	ratewallpb.UnimplementedRateLimiterServiceServer

	service *ratewall.Service
	logger  *zap.Logger
}

// NewGRPCServer wraps the service for gRPC registration.
func NewGRPCServer(service *ratewall.Service, logger *zap.Logger) *GRPCServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GRPCServer{service: service, logger: logger}
}

// Check runs one rate-limit decision. An invalid request gets the
// zero-valued deny response, the same shape the HTTP surface returns, so
// clients of either transport see identical semantics.
func (g *GRPCServer) Check(ctx context.Context, req *ratewallpb.CheckReq) (*ratewallpb.CheckResp, error) {
	decision, err := g.service.Check(ctx, ratewall.Request{
		ClientID: req.GetClientId(),
		Resource: req.GetResource(),
		Cost:     float64(req.GetCost()),
	})
	if err != nil {
		if errors.Is(err, ratewall.ErrInvalidRequest) {
			g.logger.Warn("invalid check request",
				zap.String("client_id", req.GetClientId()),
				zap.String("resource", req.GetResource()),
				zap.Error(err))
			return &ratewallpb.CheckResp{}, nil
		}
		g.logger.Error("check failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "check failed")
	}

	return &ratewallpb.CheckResp{
		Allowed:    decision.Allowed,
		Remaining:  int32(decision.Remaining),
		Limit:      int32(decision.Limit),
		ResetAt:    decision.ResetAt,
		RetryAfter: int32(decision.RetryAfter),
	}, nil
}

// GetQuota reports the live quota for a pair without consuming any of
// it. current_usage is the portion of the limit currently spent.
func (g *GRPCServer) GetQuota(ctx context.Context, req *ratewallpb.QuotaReq) (*ratewallpb.QuotaResp, error) {
	decision, err := g.service.Quota(ctx, req.GetClientId(), req.GetResource())
	if err != nil {
		if errors.Is(err, ratewall.ErrInvalidRequest) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		g.logger.Error("quota lookup failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "quota lookup failed")
	}

	return &ratewallpb.QuotaResp{
		CurrentUsage: int32(decision.Limit - decision.Remaining),
		Limit:        int32(decision.Limit),
	}, nil
}
