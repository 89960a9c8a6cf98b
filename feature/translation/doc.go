// Package translation exposes the translator over HTTP.
//
// # Endpoints
//
//   - POST   /translate                {text, target, source, use_cache}
//   - POST   /translate/data           {data, target, source, fields, use_cache}
//   - POST   /translate/array          {texts, target, source, use_cache}
//   - DELETE /translate/cache
//   - PUT    /translate/cache/duration {minutes}
//
// target falls back to translation.default_target and use_cache defaults to true.
// Translation never fails a request: text the backend cannot translate is returned as is.
package translation
