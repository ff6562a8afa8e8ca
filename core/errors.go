package core

import "errors"

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - Graph 错误：UNKNOWN_VERTEX, INVALID_INPUT
//   - Store 错误：NOT_FOUND, NOT_SUPPORTED
//   - Geo 错误：NOT_FOUND（未知区域）
type DomainError struct {
	Code    string // 错误代码（如 "UNKNOWN_VERTEX", "NOT_FOUND"）
	Message string // 错误消息
	Module  string // 模块名称（如 "graph", "store", "geo"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// IsDomainError 检查错误链中是否包含 DomainError
func IsDomainError(err error) bool {
	return GetDomainError(err) != nil
}

// GetDomainError 获取错误链中的 DomainError，如果没有则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound      = "NOT_FOUND"      // 资源不存在
	ErrorCodeNotSupported  = "NOT_SUPPORTED"  // 操作不支持
	ErrorCodeInvalidInput  = "INVALID_INPUT"  // 输入无效
	ErrorCodeUnknownVertex = "UNKNOWN_VERTEX" // 图中不存在该顶点
)

// 模块名称常量
const (
	ModuleGraph   = "graph"   // 关系图
	ModuleTrie    = "trie"    // 属性前缀树
	ModuleStore   = "store"   // 存储模块
	ModuleGeo     = "geo"     // 地理位置
	ModuleDataset = "dataset" // 数据集
)

func hasCode(err error, code string) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == code
	}
	return false
}

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool { return hasCode(err, ErrorCodeNotFound) }

// IsNotSupported 检查错误是否为 NOT_SUPPORTED
func IsNotSupported(err error) bool { return hasCode(err, ErrorCodeNotSupported) }

// IsInvalidInput 检查错误是否为 INVALID_INPUT
func IsInvalidInput(err error) bool { return hasCode(err, ErrorCodeInvalidInput) }

// IsUnknownVertex 检查错误是否为图中顶点不存在。
// 该错误意味着上游构建顺序有误（先加边/查询，后建顶点），调用方应直接向上传播。
func IsUnknownVertex(err error) bool { return hasCode(err, ErrorCodeUnknownVertex) }
