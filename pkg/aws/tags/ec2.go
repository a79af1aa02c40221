package tags

import (
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// Name is the EC2 tag key carrying the human-readable resource name.
const Name = "Name"

// ToMap converts EC2 tags to map[string]string.
func ToMap(src []ec2Types.Tag) map[string]string {
	tags := make(map[string]string, len(src))

	for _, t := range src {
		if t.Key == nil || t.Value == nil {
			continue
		}
		tags[*t.Key] = *t.Value
	}

	return tags
}

// GetName returns the Name tag value, or an empty string when unset.
func GetName(src []ec2Types.Tag) string {
	return ToMap(src)[Name]
}
