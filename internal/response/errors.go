package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrTokenRequired ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid  ErrCode = "TOKEN_INVALID"
	ErrTokenExpired  ErrCode = "TOKEN_EXPIRED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound            ErrCode = "NOT_FOUND"
	ErrRequirementNotFound ErrCode = "REQUIREMENT_NOT_FOUND"

	// ─── Analysis-specific ─────────────────────────────────────────────
	ErrNoAnalysisData      ErrCode = "NO_ANALYSIS_DATA"
	ErrAnalyzerUnavailable ErrCode = "ANALYZER_UNAVAILABLE"

	// ─── Upload ────────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrTokenRequired:
		return "인증 토큰이 필요합니다."
	case ErrTokenInvalid:
		return "유효하지 않은 인증 토큰입니다."
	case ErrTokenExpired:
		return "인증 토큰이 만료되었습니다."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "입력값 검증에 실패했습니다. 입력 내용을 확인해주세요."
	case ErrInvalidPayload:
		return "요청 형식이 올바르지 않습니다."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "요청한 리소스를 찾을 수 없습니다."
	case ErrRequirementNotFound:
		return "해당 학번과 전공의 졸업 요건을 찾을 수 없습니다."

	// ─── Analysis-specific ─────────────────────────────────────────────
	case ErrNoAnalysisData:
		return "분석 데이터가 없습니다. 다시 시도해주세요."
	case ErrAnalyzerUnavailable:
		return "성적표 분석 서비스에 연결할 수 없습니다."

	// ─── Upload ────────────────────────────────────────────────────────
	case ErrFileRequired:
		return "이미지 파일이 필요합니다."
	case ErrUnsupportedFile:
		return "지원하지 않는 이미지 형식입니다."
	case ErrFileTooLarge:
		return "이미지 크기가 제한을 초과했습니다."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "서버 내부 오류가 발생했습니다."
	default:
		return "예상하지 못한 오류가 발생했습니다."
	}
}
