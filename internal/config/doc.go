// Package config resolves, persists, and publishes DashScope credentials and
// region-specific endpoint URLs.
//
// The persisted store is a flat JSON object (Key.json by default, overridable
// with SCOPEKEY_CONFIG) holding three keys: DASHSCOPE_API_KEY,
// DASHSCOPE_API_BASE (OpenAI-compatible endpoint), and
// DASHSCOPE_BASE_HTTP_API_URL (native-protocol endpoint). A missing or
// unparseable store degrades to an empty map; it never aborts resolution.
//
// [Resolver.Resolve] fills gaps interactively: a masked prompt for the API
// key, and a single yes/no region question from which BOTH endpoint URLs are
// derived together. A partial endpoint pair is never trusted — if either URL
// is missing the region is asked again and both are regenerated, so the two
// endpoints can never point at different regions. Newly gathered values are
// written back to the store and, once all three are present, published into
// the process environment and handed to the optional native-protocol
// configurator. Every failure path degrades to a warning.
package config
