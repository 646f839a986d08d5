// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, the
// standardized implementations here can be shared across test packages.
// Each mock exposes function fields (CreateFn, GetByIDFn, ...) that tests
// set to script behavior; unset fields fall back to a simple in-memory
// default.
//
// Usage:
//
//	import "github.com/taskhive/taskhive-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    jwtService := &mocks.MockJWTService{
//	        GenerateTokenFn: func(ctx context.Context, userID uuid.UUID) (string, error) {
//	            return "mocked-token", nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
