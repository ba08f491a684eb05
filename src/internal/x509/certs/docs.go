// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides decoding operations for [X.509] certificates.
// It accepts [PEM], DER and [PKCS7] input and exposes the subject of a
// certificate as an ordered list of attribute/value pairs, exactly as the
// encoding presents them. The inventory scanner builds on it for its native
// certificate loader.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
