package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// AnalysisPayloadKey returns the cache key for a raw upstream analysis
// payload, keyed by the SHA-256 digest of the uploaded image.
func (r *CacheKeyStruct) AnalysisPayloadKey(imageDigest string) string {
	return fmt.Sprintf("analysis:%s:payload", imageDigest)
}

var CacheKey = NewCacheKeyStruct()
