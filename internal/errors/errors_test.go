package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{
			name:     "parsing error type",
			errType:  ErrTypeParsing,
			expected: "PARSING",
		},
		{
			name:     "validation error type",
			errType:  ErrTypeValidation,
			expected: "VALIDATION",
		},
		{
			name:     "storage error type",
			errType:  ErrTypeStorage,
			expected: "STORAGE",
		},
		{
			name:     "not found error type",
			errType:  ErrTypeNotFound,
			expected: "NOT_FOUND",
		},
		{
			name:     "insufficient data error type",
			errType:  ErrTypeInsufficientData,
			expected: "INSUFFICIENT_DATA",
		},
		{
			name:     "config error type",
			errType:  ErrTypeConfig,
			expected: "CONFIG",
		},
		{
			name:     "input error type",
			errType:  ErrTypeInput,
			expected: "INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name: "error without cause",
			appError: &AppError{
				Type:    ErrTypeValidation,
				Message: "measurement file failed validation",
				Cause:   nil,
			},
			wantMessage: "[VALIDATION] measurement file failed validation",
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeStorage,
				Message: "failed to open measurement file",
				Cause:   fmt.Errorf("permission denied"),
			},
			wantMessage: "[STORAGE] failed to open measurement file: permission denied",
		},
		{
			name: "insufficient data error",
			appError: &AppError{
				Type:    ErrTypeInsufficientData,
				Message: "not enough data points to compute statistics for run1.dat",
				Cause:   nil,
			},
			wantMessage: "[INSUFFICIENT_DATA] not enough data points to compute statistics for run1.dat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	t.Run("unwrap with cause", func(t *testing.T) {
		cause := fmt.Errorf("original error")
		appErr := NewStorageError("open failed", cause)

		assert.True(t, errors.Is(appErr, cause))
	})

	t.Run("unwrap without cause", func(t *testing.T) {
		appErr := NewNotFoundError("measurement file")
		assert.Nil(t, appErr.Unwrap())
	})
}

func TestAppError_WithContext(t *testing.T) {
	tests := []struct {
		name          string
		appError      *AppError
		key           string
		value         interface{}
		expectedValue interface{}
	}{
		{
			name:          "add string context",
			appError:      NewParsingError("corrupt data point", nil),
			key:           "file",
			value:         "millikan.dat",
			expectedValue: "millikan.dat",
		},
		{
			name:          "add integer context",
			appError:      NewParsingError("corrupt data point", nil),
			key:           "line",
			value:         17,
			expectedValue: 17,
		},
		{
			name: "add context to error with nil context",
			appError: &AppError{
				Type:    ErrTypeStorage,
				Message: "read failed",
				Context: nil,
			},
			key:           "path",
			value:         "data/run2.dat",
			expectedValue: "data/run2.dat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.WithContext(tt.key, tt.value)

			// Should return the same instance
			assert.Same(t, tt.appError, result)

			require.Contains(t, result.Context, tt.key)
			assert.Equal(t, tt.expectedValue, result.Context[tt.key])
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := fmt.Errorf("underlying failure")

	tests := []struct {
		name      string
		got       *AppError
		wantType  ErrorType
		wantMsg   string
		wantCause error
	}{
		{
			name:      "parsing error",
			got:       NewParsingError("line is not a number", cause),
			wantType:  ErrTypeParsing,
			wantMsg:   "line is not a number",
			wantCause: cause,
		},
		{
			name:      "validation error",
			got:       NewValidationError("input path is a directory", nil),
			wantType:  ErrTypeValidation,
			wantMsg:   "input path is a directory",
			wantCause: nil,
		},
		{
			name:      "storage error",
			got:       NewStorageError("failed to read file", cause),
			wantType:  ErrTypeStorage,
			wantMsg:   "failed to read file",
			wantCause: cause,
		},
		{
			name:      "not found error",
			got:       NewNotFoundError("measurement file"),
			wantType:  ErrTypeNotFound,
			wantMsg:   "measurement file not found",
			wantCause: nil,
		},
		{
			name:      "config error",
			got:       NewConfigError("invalid log level", cause),
			wantType:  ErrTypeConfig,
			wantMsg:   "invalid log level",
			wantCause: cause,
		},
		{
			name:      "input error",
			got:       NewInputError("input stream closed", cause),
			wantType:  ErrTypeInput,
			wantMsg:   "input stream closed",
			wantCause: cause,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.got.Type)
			assert.Equal(t, tt.wantMsg, tt.got.Message)
			assert.Equal(t, tt.wantCause, tt.got.Cause)
			assert.NotNil(t, tt.got.Context)
		})
	}
}

func TestNewInsufficientDataError(t *testing.T) {
	got := NewInsufficientDataError("run1.dat", 1)

	assert.Equal(t, ErrTypeInsufficientData, got.Type)
	assert.Equal(t, "not enough data points to compute statistics for run1.dat", got.Message)
	assert.Equal(t, "run1.dat", got.Context["source"])
	assert.Equal(t, 1, got.Context["count"])
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{
			name: "direct AppError",
			err:  NewStorageError("open failed", nil),
			want: ErrTypeStorage,
		},
		{
			name: "wrapped AppError",
			err:  fmt.Errorf("loading: %w", NewNotFoundError("file")),
			want: ErrTypeNotFound,
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
			want: "",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.err))
		})
	}
}

func TestIsType(t *testing.T) {
	err := fmt.Errorf("analyze: %w", NewInsufficientDataError("run1.dat", 0))

	assert.True(t, IsType(err, ErrTypeInsufficientData))
	assert.False(t, IsType(err, ErrTypeStorage))
	assert.False(t, IsType(errors.New("plain"), ErrTypeInsufficientData))
}

func TestAppError_ErrorsIntegration(t *testing.T) {
	t.Run("errors.Is traverses nested AppErrors", func(t *testing.T) {
		rootErr := fmt.Errorf("root cause")
		inner := NewStorageError("read failed", rootErr)
		outer := NewParsingError("load failed", inner)

		assert.True(t, errors.Is(outer, inner))
		assert.True(t, errors.Is(outer, rootErr))
	})

	t.Run("errors.As finds AppError through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("wrapped: %w", NewConfigError("bad precision", nil))

		var appErr *AppError
		require.True(t, errors.As(wrapped, &appErr))
		assert.Equal(t, ErrTypeConfig, appErr.Type)
	})
}
