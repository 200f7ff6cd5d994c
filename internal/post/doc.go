// Package post holds the server-side Post board: the generated posts of each
// browser session and the image/text state machine of every Post.
//
// Image states move idle -> generating -> ready | failed; regenerate and
// refine re-enter generating from ready or failed. Text moves
// ready -> regenerating -> ready | failed and is only available when the Post
// recorded a platform, a tone and a language. A second operation of the same
// kind on a Post that is still in flight is rejected with ErrBusy; different
// Posts never block each other.
//
// Boards live in memory only and are evicted after a period of inactivity.
package post
