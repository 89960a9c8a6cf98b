// Package translate translates text and arbitrarily nested data through an external
// translation service.
//
// # Translator
//
// A Translator is constructed with a Backend, an optional cache.Cache and a Config, and is
// injected wherever translation is needed. It exposes:
//
//   - Translate: one string. Results are cached under a SHA-256 digest of
//     (text, target, source or "auto") for the configured lifetime (24h by default).
//   - TranslateArray: every string value of a flat map, without recursion or filtering.
//   - TranslateData: a copy of any map, slice, struct or pointer graph with its string
//     leaves translated. Options.Fields limits translation to values under the listed keys
//     while nested containers are always searched.
//   - ClearCache and SetCacheDuration for cache management.
//
// Translation is fail-open: when the backend errors, the failure is logged and the original
// text is returned, so a translation outage never breaks the response it is embedded in.
// Cache read and write errors are logged and treated as misses.
//
// # Backends
//
// HTTPBackend speaks the LibreTranslate JSON API:
//
//	POST {endpoint}/translate
//	{"q": "Hello", "source": "auto", "target": "fr", "format": "text", "api_key": "..."}
//	-> {"translatedText": "Bonjour"}
//
// Configuration:
//
//	TRANSLATION_ENDPOINT=http://libretranslate:5000
//	TRANSLATION_API_KEY=
//	TRANSLATION_CACHE_MINUTES=1440
package translate
