package errors

// Metadata keys attached by the domain constructors
const (
	MetaGeneration = "generation"
	MetaResource   = "resource"
	MetaKey        = "key"
	MetaField      = "field"
	MetaStatus     = "status"
)

// InvalidGeneration reports a generation outside the supported [1,9] range
func InvalidGeneration(gen, minGen, maxGen int) *Error {
	return InvalidArgumentf("generation %d is out of range [%d,%d]", gen, minGen, maxGen).
		WithMeta(MetaGeneration, gen)
}

// Malformed reports an upstream record missing a field we cannot default
func Malformed(resource, key, field string) *Error {
	return DataLossf("malformed %s %q: missing %s", resource, key, field).
		WithMeta(MetaResource, resource).
		WithMeta(MetaKey, key).
		WithMeta(MetaField, field)
}

// Upstream wraps a failed fetch of resource/key
func Upstream(err error, resource, key string) *Error {
	if err == nil {
		return nil
	}
	code := CodeUnavailable
	var existing *Error
	if As(err, &existing) {
		code = existing.Code
	}
	return WrapWithCodef(err, code, "failed to fetch %s %q", resource, key).
		WithMeta(MetaResource, resource).
		WithMeta(MetaKey, key)
}

// UpstreamStatus builds an error from a non-2xx upstream HTTP response
func UpstreamStatus(status int, resource, key string) *Error {
	return Newf(CodeFromHTTPStatus(status), "%s %q: upstream returned HTTP %d", resource, key, status).
		WithMeta(MetaResource, resource).
		WithMeta(MetaKey, key).
		WithMeta(MetaStatus, status)
}
