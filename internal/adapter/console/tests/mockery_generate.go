package tests

// Mock generation example for console menu tests.
//
// Usage:
//   go generate ./internal/adapter/console/tests
//
//go:generate mockery --name TaskService --dir ../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
