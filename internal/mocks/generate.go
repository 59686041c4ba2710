// Package mocks provides mock implementations for testing the finance frontend.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockFinanceAPI(ctrl)
//	api.EXPECT().GetAllRecords(gomock.Any()).Return(resp, nil)
package mocks

// Generate mock for FinanceAPI interface from internal/ports package.
// This creates MockFinanceAPI with methods for every backend endpoint:
// GetAllRecords, GetRecord, CreateRecord, UpdateRecord, DeleteRecord, GetStatistics,
// ClearAllData, Login, ChangePassword
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=finance_api_mock.go github.com/target/finance-web/internal/ports FinanceAPI
