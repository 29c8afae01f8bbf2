// Package keypath provides efficient key composition for nested parameter
// traversal.
//
// The primary type is [Builder], which uses push/pop semantics to build
// accessor keys incrementally without allocating intermediate strings. The
// composition style (dot, bracket, or flatten) is fixed when the builder is
// obtained, matching the accessor convention of the flattening walk that
// owns it.
//
// Use [Get] to obtain a pooled Builder, and [Put] to return it:
//
//	kb := keypath.Get(keypath.StyleDot)
//	defer keypath.Put(kb)
//
//	kb.Push("user")
//	kb.Push("address")
//	kb.Key("city") // "user.address.city", builder unchanged
//	kb.Pop()
//	kb.Pop()
//
// With [StyleBracket] the same walk yields "user[address][city]"; with
// [StyleFlatten] only the leaf name "city" survives.
package keypath
