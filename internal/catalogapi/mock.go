package catalogapi

import (
	"context"

	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockAPI is a testify mock of API.
//
//	api := new(MockAPI)
//	api.On("ListBooks", mock.Anything).Return([]domain.Listing{...}, nil)
type MockAPI struct {
	mock.Mock
}

var _ API = (*MockAPI)(nil)

func listings(args mock.Arguments, i int) []domain.Listing {
	if v := args.Get(i); v != nil {
		return v.([]domain.Listing)
	}
	return nil
}

func (m *MockAPI) ListBooks(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	return listings(args, 0), args.Error(1)
}

func (m *MockAPI) GetUserProfile(ctx context.Context, roll string) (domain.User, error) {
	args := m.Called(ctx, roll)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockAPI) GetUserBooks(ctx context.Context, roll string) ([]domain.Listing, error) {
	args := m.Called(ctx, roll)
	return listings(args, 0), args.Error(1)
}

func (m *MockAPI) UploadBook(ctx context.Context, listing domain.NewListing) (Result, error) {
	args := m.Called(ctx, listing)
	return args.Get(0).(Result), args.Error(1)
}

func (m *MockAPI) DeleteBook(ctx context.Context, id domain.FlexValue, roll string) (Result, error) {
	args := m.Called(ctx, id, roll)
	return args.Get(0).(Result), args.Error(1)
}

func (m *MockAPI) Login(ctx context.Context, roll, password string) (domain.User, error) {
	args := m.Called(ctx, roll, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockAPI) Register(ctx context.Context, roll, name, password string) (domain.User, error) {
	args := m.Called(ctx, roll, name, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockAPI) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// ImageURL is not recorded; it joins rel onto a fixed test host.
func (m *MockAPI) ImageURL(rel string) string {
	if rel == "" {
		return ""
	}
	return "http://assets.test/" + rel
}
