package mitab

// Export some internal functions for testing

var Unquote = unquote
var UnescIndex = unescIndex
var FirstPart = firstPart

const MaxMsgLen = maxMsgLen
