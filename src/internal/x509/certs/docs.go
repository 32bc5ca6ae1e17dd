// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs loads [X.509] certificates from [PEM], DER, and [PKCS7] input
// and decodes each one with the strict DER readers of package der.
//
// [Certificate] splits an input file into raw DER certificates. [Parse] walks one
// certificate (TBSCertificate, signature algorithm, and signature) and returns a
// [Summary] holding the issuer and subject names, the validity window, the serial
// number, the extension list, and the decoded subjectAltName and basicConstraints
// values. Certificates are never verified; a summary only says the encoding is sound.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
