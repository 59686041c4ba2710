package ports

import (
	"context"
	"net/http"
)

// FinanceAPI is the finance backend REST surface, one method per endpoint.
//
// Successful calls return the raw response with its body unread; the caller
// closes it. Transport failures and non-2xx statuses are returned as errors.
type FinanceAPI interface {
	GetAllRecords(ctx context.Context) (*http.Response, error)
	GetRecord(ctx context.Context, id any) (*http.Response, error)
	CreateRecord(ctx context.Context, record any) (*http.Response, error)
	UpdateRecord(ctx context.Context, id, record any) (*http.Response, error)
	DeleteRecord(ctx context.Context, id any) (*http.Response, error)
	GetStatistics(ctx context.Context) (*http.Response, error)
	ClearAllData(ctx context.Context) (*http.Response, error)
	Login(ctx context.Context, credentials any) (*http.Response, error)
	ChangePassword(ctx context.Context, passwordData any) (*http.Response, error)
}
