package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/pkg/api"
)

const (
	// MemberServiceName is the fully-qualified name of the MemberService service.
	MemberServiceName = "splitledger.v1.MemberService"

	MemberServiceGetMemberBalancesProcedure = "/splitledger.v1.MemberService/GetMemberBalances"
)

// MemberServiceHandler is implemented by the server side of MemberService.
type MemberServiceHandler interface {
	GetMemberBalances(context.Context, *connect.Request[api.GetMemberBalancesRequest]) (*connect.Response[api.GetMemberBalancesResponse], error)
}

// NewMemberServiceHandler builds an HTTP handler from the service implementation.
func NewMemberServiceHandler(svc MemberServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	getMemberBalancesHandler := connect.NewUnaryHandler(MemberServiceGetMemberBalancesProcedure, svc.GetMemberBalances, handlerOptions(opts))

	return "/" + MemberServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case MemberServiceGetMemberBalancesProcedure:
			getMemberBalancesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// MemberServiceClient is a client for MemberService.
type MemberServiceClient interface {
	GetMemberBalances(context.Context, *connect.Request[api.GetMemberBalancesRequest]) (*connect.Response[api.GetMemberBalancesResponse], error)
}

// NewMemberServiceClient constructs a client for MemberService rooted at baseURL.
func NewMemberServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MemberServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &memberServiceClient{
		getMemberBalances: connect.NewClient[api.GetMemberBalancesRequest, api.GetMemberBalancesResponse](
			httpClient, baseURL+MemberServiceGetMemberBalancesProcedure, clientOptions(opts)),
	}
}

type memberServiceClient struct {
	getMemberBalances *connect.Client[api.GetMemberBalancesRequest, api.GetMemberBalancesResponse]
}

func (c *memberServiceClient) GetMemberBalances(ctx context.Context, req *connect.Request[api.GetMemberBalancesRequest]) (*connect.Response[api.GetMemberBalancesResponse], error) {
	return c.getMemberBalances.CallUnary(ctx, req)
}
