package latentv1

import (
	"testing"

	"google.golang.org/grpc/encoding"
)

func TestCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	if codec == nil {
		t.Fatalf("codec %q not registered", CodecName)
	}

	payload, err := codec.Marshal(&PlanRequest{AspectRatio: "16:9", ModelType: "FLUX"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded PlanRequest
	if err := codec.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.AspectRatio != "16:9" || decoded.ModelType != "FLUX" {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}
