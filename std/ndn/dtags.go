package ndn

import (
	"fmt"

	enc "github.com/named-data/ndnx/std/encoding"
)

// Dictionary tags of the CCNx protocol. The wire carries only these numbers;
// the names below exist for diagnostics.
const (
	DTagAny                              enc.DTag = 13
	DTagName                             enc.DTag = enc.NameDTag
	DTagComponent                        enc.DTag = enc.ComponentDTag
	DTagCertificate                      enc.DTag = 16
	DTagCollection                       enc.DTag = 17
	DTagCompleteName                     enc.DTag = 18
	DTagContent                          enc.DTag = 19
	DTagSignedInfo                       enc.DTag = 20
	DTagContentDigest                    enc.DTag = 21
	DTagContentHash                      enc.DTag = 22
	DTagCount                            enc.DTag = 24
	DTagHeader                           enc.DTag = 25
	DTagInterest                         enc.DTag = 26
	DTagKey                              enc.DTag = 27
	DTagKeyLocator                       enc.DTag = 28
	DTagKeyName                          enc.DTag = 29
	DTagLength                           enc.DTag = 30
	DTagLink                             enc.DTag = 31
	DTagLinkAuthenticator                enc.DTag = 32
	DTagNameComponentCount               enc.DTag = 33
	DTagExtOpt                           enc.DTag = 34
	DTagRootDigest                       enc.DTag = 36
	DTagSignature                        enc.DTag = 37
	DTagStart                            enc.DTag = 38
	DTagTimestamp                        enc.DTag = 39
	DTagType                             enc.DTag = 40
	DTagNonce                            enc.DTag = 41
	DTagScope                            enc.DTag = 42
	DTagExclude                          enc.DTag = 43
	DTagBloom                            enc.DTag = 44
	DTagBloomSeed                        enc.DTag = 45
	DTagAnswerOriginKind                 enc.DTag = 47
	DTagInterestLifetime                 enc.DTag = 48
	DTagWitness                          enc.DTag = 53
	DTagSignatureBits                    enc.DTag = 54
	DTagDigestAlgorithm                  enc.DTag = 55
	DTagBlockSize                        enc.DTag = 56
	DTagFreshnessSeconds                 enc.DTag = 58
	DTagFinalBlockID                     enc.DTag = 59
	DTagPublisherPublicKeyDigest         enc.DTag = 60
	DTagPublisherCertificateDigest       enc.DTag = 61
	DTagPublisherIssuerKeyDigest         enc.DTag = 62
	DTagPublisherIssuerCertificateDigest enc.DTag = 63
	DTagContentObject                    enc.DTag = 64
	DTagWrappedKey                       enc.DTag = 65
	DTagWrappingKeyIdentifier            enc.DTag = 66
	DTagWrapAlgorithm                    enc.DTag = 67
	DTagKeyAlgorithm                     enc.DTag = 68
	DTagLabel                            enc.DTag = 69
	DTagEncryptedKey                     enc.DTag = 70
	DTagEncryptedNonceKey                enc.DTag = 71
	DTagWrappingKeyName                  enc.DTag = 72
	DTagAction                           enc.DTag = 73
	DTagFaceID                           enc.DTag = 74
	DTagMinSuffixComponents              enc.DTag = 83
	DTagMaxSuffixComponents              enc.DTag = 84
	DTagChildSelector                    enc.DTag = 85
	DTagRepositoryInfo                   enc.DTag = 86
	DTagVersion                          enc.DTag = 87
	DTagRepositoryVersion                enc.DTag = 88
	DTagGlobalPrefix                     enc.DTag = 89
	DTagLocalName                        enc.DTag = 90
	DTagPolicy                           enc.DTag = 91
	DTagNamespace                        enc.DTag = 92
	DTagGlobalPrefixName                 enc.DTag = 93
	DTagPolicyVersion                    enc.DTag = 94
	DTagKeyValueSet                      enc.DTag = 95
	DTagKeyValuePair                     enc.DTag = 96
	DTagIntegerValue                     enc.DTag = 97
	DTagDecimalValue                     enc.DTag = 98
	DTagStringValue                      enc.DTag = 99
	DTagBinaryValue                      enc.DTag = 100
	DTagNameValue                        enc.DTag = 101
	DTagEntry                            enc.DTag = 102
	DTagACL                              enc.DTag = 103
	DTagParameterizedName                enc.DTag = 104
	DTagPrefix                           enc.DTag = 105
	DTagSuffix                           enc.DTag = 106
	DTagRoot                             enc.DTag = 107
	DTagProfileName                      enc.DTag = 108
	DTagParameters                       enc.DTag = 109
	DTagInfoString                       enc.DTag = 110
	DTagStatusResponse                   enc.DTag = 112
	DTagStatusCode                       enc.DTag = 113
	DTagStatusText                       enc.DTag = 114
)

var dtagNames = map[enc.DTag]string{
	DTagAny:                              "Any",
	DTagName:                             "Name",
	DTagComponent:                        "Component",
	DTagCertificate:                      "Certificate",
	DTagCollection:                       "Collection",
	DTagCompleteName:                     "CompleteName",
	DTagContent:                          "Content",
	DTagSignedInfo:                       "SignedInfo",
	DTagContentDigest:                    "ContentDigest",
	DTagContentHash:                      "ContentHash",
	DTagCount:                            "Count",
	DTagHeader:                           "Header",
	DTagInterest:                         "Interest",
	DTagKey:                              "Key",
	DTagKeyLocator:                       "KeyLocator",
	DTagKeyName:                          "KeyName",
	DTagLength:                           "Length",
	DTagLink:                             "Link",
	DTagLinkAuthenticator:                "LinkAuthenticator",
	DTagNameComponentCount:               "NameComponentCount",
	DTagExtOpt:                           "ExtOpt",
	DTagRootDigest:                       "RootDigest",
	DTagSignature:                        "Signature",
	DTagStart:                            "Start",
	DTagTimestamp:                        "Timestamp",
	DTagType:                             "Type",
	DTagNonce:                            "Nonce",
	DTagScope:                            "Scope",
	DTagExclude:                          "Exclude",
	DTagBloom:                            "Bloom",
	DTagBloomSeed:                        "BloomSeed",
	DTagAnswerOriginKind:                 "AnswerOriginKind",
	DTagInterestLifetime:                 "InterestLifetime",
	DTagWitness:                          "Witness",
	DTagSignatureBits:                    "SignatureBits",
	DTagDigestAlgorithm:                  "DigestAlgorithm",
	DTagBlockSize:                        "BlockSize",
	DTagFreshnessSeconds:                 "FreshnessSeconds",
	DTagFinalBlockID:                     "FinalBlockID",
	DTagPublisherPublicKeyDigest:         "PublisherPublicKeyDigest",
	DTagPublisherCertificateDigest:       "PublisherCertificateDigest",
	DTagPublisherIssuerKeyDigest:         "PublisherIssuerKeyDigest",
	DTagPublisherIssuerCertificateDigest: "PublisherIssuerCertificateDigest",
	DTagContentObject:                    "ContentObject",
	DTagWrappedKey:                       "WrappedKey",
	DTagWrappingKeyIdentifier:            "WrappingKeyIdentifier",
	DTagWrapAlgorithm:                    "WrapAlgorithm",
	DTagKeyAlgorithm:                     "KeyAlgorithm",
	DTagLabel:                            "Label",
	DTagEncryptedKey:                     "EncryptedKey",
	DTagEncryptedNonceKey:                "EncryptedNonceKey",
	DTagWrappingKeyName:                  "WrappingKeyName",
	DTagAction:                           "Action",
	DTagFaceID:                           "FaceID",
	DTagMinSuffixComponents:              "MinSuffixComponents",
	DTagMaxSuffixComponents:              "MaxSuffixComponents",
	DTagChildSelector:                    "ChildSelector",
	DTagRepositoryInfo:                   "RepositoryInfo",
	DTagVersion:                          "Version",
	DTagRepositoryVersion:                "RepositoryVersion",
	DTagGlobalPrefix:                     "GlobalPrefix",
	DTagLocalName:                        "LocalName",
	DTagPolicy:                           "Policy",
	DTagNamespace:                        "Namespace",
	DTagGlobalPrefixName:                 "GlobalPrefixName",
	DTagPolicyVersion:                    "PolicyVersion",
	DTagKeyValueSet:                      "KeyValueSet",
	DTagKeyValuePair:                     "KeyValuePair",
	DTagIntegerValue:                     "IntegerValue",
	DTagDecimalValue:                     "DecimalValue",
	DTagStringValue:                      "StringValue",
	DTagBinaryValue:                      "BinaryValue",
	DTagNameValue:                        "NameValue",
	DTagEntry:                            "Entry",
	DTagACL:                              "ACL",
	DTagParameterizedName:                "ParameterizedName",
	DTagPrefix:                           "Prefix",
	DTagSuffix:                           "Suffix",
	DTagRoot:                             "Root",
	DTagProfileName:                      "ProfileName",
	DTagParameters:                       "Parameters",
	DTagInfoString:                       "InfoString",
	DTagStatusResponse:                   "StatusResponse",
	DTagStatusCode:                       "StatusCode",
	DTagStatusText:                       "StatusText",
}

// TagName returns the dictionary name of tag, or its number in hex if the
// tag is not in the dictionary. Only for logs and dumps; decoding never
// looks tags up by name.
func TagName(tag enc.DTag) string {
	if name, ok := dtagNames[tag]; ok {
		return name
	}
	return fmt.Sprintf("0x%x", uint64(tag))
}
