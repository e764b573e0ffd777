package service_test

import (
	"context"

	"quemjoga-backend/internal/mocks"

	"go.uber.org/mock/gomock"
)

// expectTx makes the mocked transactor run the unit of work inline
func expectTx(tx *mocks.MockTransactorInterface) *gomock.Call {
	return tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func intPtr(v int) *int {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func strPtr(v string) *string {
	return &v
}
