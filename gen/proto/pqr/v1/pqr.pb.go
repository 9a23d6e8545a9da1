// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: pqr/v1/pqr.proto

package pqrv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type RunFlowRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Empresa       string                 `protobuf:"bytes,1,opt,name=empresa,proto3" json:"empresa,omitempty"` // "afinia" | "aire"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunFlowRequest) Reset() {
	*x = RunFlowRequest{}
	mi := &file_pqr_v1_pqr_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunFlowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunFlowRequest) ProtoMessage() {}

func (x *RunFlowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pqr_v1_pqr_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunFlowRequest.ProtoReflect.Descriptor instead.
func (*RunFlowRequest) Descriptor() ([]byte, []int) {
	return file_pqr_v1_pqr_proto_rawDescGZIP(), []int{0}
}

func (x *RunFlowRequest) GetEmpresa() string {
	if x != nil {
		return x.Empresa
	}
	return ""
}

type RunFlowResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Run           *FlowRun               `protobuf:"bytes,1,opt,name=run,proto3" json:"run,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunFlowResponse) Reset() {
	*x = RunFlowResponse{}
	mi := &file_pqr_v1_pqr_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunFlowResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunFlowResponse) ProtoMessage() {}

func (x *RunFlowResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pqr_v1_pqr_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunFlowResponse.ProtoReflect.Descriptor instead.
func (*RunFlowResponse) Descriptor() ([]byte, []int) {
	return file_pqr_v1_pqr_proto_rawDescGZIP(), []int{1}
}

func (x *RunFlowResponse) GetRun() *FlowRun {
	if x != nil {
		return x.Run
	}
	return nil
}

type GetFlowRunRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFlowRunRequest) Reset() {
	*x = GetFlowRunRequest{}
	mi := &file_pqr_v1_pqr_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFlowRunRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFlowRunRequest) ProtoMessage() {}

func (x *GetFlowRunRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pqr_v1_pqr_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFlowRunRequest.ProtoReflect.Descriptor instead.
func (*GetFlowRunRequest) Descriptor() ([]byte, []int) {
	return file_pqr_v1_pqr_proto_rawDescGZIP(), []int{2}
}

func (x *GetFlowRunRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetFlowRunResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Run           *FlowRun               `protobuf:"bytes,1,opt,name=run,proto3" json:"run,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFlowRunResponse) Reset() {
	*x = GetFlowRunResponse{}
	mi := &file_pqr_v1_pqr_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFlowRunResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFlowRunResponse) ProtoMessage() {}

func (x *GetFlowRunResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pqr_v1_pqr_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFlowRunResponse.ProtoReflect.Descriptor instead.
func (*GetFlowRunResponse) Descriptor() ([]byte, []int) {
	return file_pqr_v1_pqr_proto_rawDescGZIP(), []int{3}
}

func (x *GetFlowRunResponse) GetRun() *FlowRun {
	if x != nil {
		return x.Run
	}
	return nil
}

type ListFlowRunsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Empresa       string                 `protobuf:"bytes,1,opt,name=empresa,proto3" json:"empresa,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFlowRunsRequest) Reset() {
	*x = ListFlowRunsRequest{}
	mi := &file_pqr_v1_pqr_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFlowRunsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFlowRunsRequest) ProtoMessage() {}

func (x *ListFlowRunsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pqr_v1_pqr_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFlowRunsRequest.ProtoReflect.Descriptor instead.
func (*ListFlowRunsRequest) Descriptor() ([]byte, []int) {
	return file_pqr_v1_pqr_proto_rawDescGZIP(), []int{4}
}

func (x *ListFlowRunsRequest) GetEmpresa() string {
	if x != nil {
		return x.Empresa
	}
	return ""
}

func (x *ListFlowRunsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListFlowRunsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Runs          []*FlowRun             `protobuf:"bytes,1,rep,name=runs,proto3" json:"runs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFlowRunsResponse) Reset() {
	*x = ListFlowRunsResponse{}
	mi := &file_pqr_v1_pqr_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFlowRunsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFlowRunsResponse) ProtoMessage() {}

func (x *ListFlowRunsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pqr_v1_pqr_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFlowRunsResponse.ProtoReflect.Descriptor instead.
func (*ListFlowRunsResponse) Descriptor() ([]byte, []int) {
	return file_pqr_v1_pqr_proto_rawDescGZIP(), []int{5}
}

func (x *ListFlowRunsResponse) GetRuns() []*FlowRun {
	if x != nil {
		return x.Runs
	}
	return nil
}

type FlowStepResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Step          string                 `protobuf:"bytes,1,opt,name=step,proto3" json:"step,omitempty"`
	Success       bool                   `protobuf:"varint,2,opt,name=success,proto3" json:"success,omitempty"`
	DurationMs    int64                  `protobuf:"varint,3,opt,name=duration_ms,json=durationMs,proto3" json:"duration_ms,omitempty"`
	Processed     int32                  `protobuf:"varint,4,opt,name=processed,proto3" json:"processed,omitempty"`
	Errors        []string               `protobuf:"bytes,5,rep,name=errors,proto3" json:"errors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FlowStepResult) Reset() {
	*x = FlowStepResult{}
	mi := &file_pqr_v1_pqr_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FlowStepResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FlowStepResult) ProtoMessage() {}

func (x *FlowStepResult) ProtoReflect() protoreflect.Message {
	mi := &file_pqr_v1_pqr_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FlowStepResult.ProtoReflect.Descriptor instead.
func (*FlowStepResult) Descriptor() ([]byte, []int) {
	return file_pqr_v1_pqr_proto_rawDescGZIP(), []int{6}
}

func (x *FlowStepResult) GetStep() string {
	if x != nil {
		return x.Step
	}
	return ""
}

func (x *FlowStepResult) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *FlowStepResult) GetDurationMs() int64 {
	if x != nil {
		return x.DurationMs
	}
	return 0
}

func (x *FlowStepResult) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *FlowStepResult) GetErrors() []string {
	if x != nil {
		return x.Errors
	}
	return nil
}

type FlowRun struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Empresa       string                 `protobuf:"bytes,2,opt,name=empresa,proto3" json:"empresa,omitempty"`
	StartedAt     string                 `protobuf:"bytes,3,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`    // RFC 3339
	FinishedAt    string                 `protobuf:"bytes,4,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"` // RFC 3339, empty while running
	Success       bool                   `protobuf:"varint,5,opt,name=success,proto3" json:"success,omitempty"`
	Steps         []*FlowStepResult      `protobuf:"bytes,6,rep,name=steps,proto3" json:"steps,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FlowRun) Reset() {
	*x = FlowRun{}
	mi := &file_pqr_v1_pqr_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FlowRun) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FlowRun) ProtoMessage() {}

func (x *FlowRun) ProtoReflect() protoreflect.Message {
	mi := &file_pqr_v1_pqr_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FlowRun.ProtoReflect.Descriptor instead.
func (*FlowRun) Descriptor() ([]byte, []int) {
	return file_pqr_v1_pqr_proto_rawDescGZIP(), []int{7}
}

func (x *FlowRun) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *FlowRun) GetEmpresa() string {
	if x != nil {
		return x.Empresa
	}
	return ""
}

func (x *FlowRun) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *FlowRun) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *FlowRun) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *FlowRun) GetSteps() []*FlowStepResult {
	if x != nil {
		return x.Steps
	}
	return nil
}

var File_pqr_v1_pqr_proto protoreflect.FileDescriptor

const file_pqr_v1_pqr_proto_rawDesc = "" +
	"\n" +
	"\x10pqr/v1/pqr.proto\x12\x06pqr.v1\"*\n" +
	"\x0eRunFlowRequest\x12\x18\n" +
	"\aempresa\x18\x01 \x01(\tR\aempresa\"4\n" +
	"\x0fRunFlowResponse\x12!\n" +
	"\x03run\x18\x01 \x01(\v2\x0f.pqr.v1.FlowRunR\x03run\"#\n" +
	"\x11GetFlowRunRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"7\n" +
	"\x12GetFlowRunResponse\x12!\n" +
	"\x03run\x18\x01 \x01(\v2\x0f.pqr.v1.FlowRunR\x03run\"E\n" +
	"\x13ListFlowRunsRequest\x12\x18\n" +
	"\aempresa\x18\x01 \x01(\tR\aempresa\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\";\n" +
	"\x14ListFlowRunsResponse\x12#\n" +
	"\x04runs\x18\x01 \x03(\v2\x0f.pqr.v1.FlowRunR\x04runs\"\x95\x01\n" +
	"\x0eFlowStepResult\x12\x12\n" +
	"\x04step\x18\x01 \x01(\tR\x04step\x12\x18\n" +
	"\asuccess\x18\x02 \x01(\bR\asuccess\x12\x1f\n" +
	"\vduration_ms\x18\x03 \x01(\x03R\n" +
	"durationMs\x12\x1c\n" +
	"\tprocessed\x18\x04 \x01(\x05R\tprocessed\x12\x16\n" +
	"\x06errors\x18\x05 \x03(\tR\x06errors\"\xbb\x01\n" +
	"\aFlowRun\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x18\n" +
	"\aempresa\x18\x02 \x01(\tR\aempresa\x12\x1d\n" +
	"\n" +
	"started_at\x18\x03 \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\x04 \x01(\tR\n" +
	"finishedAt\x12\x18\n" +
	"\asuccess\x18\x05 \x01(\bR\asuccess\x12,\n" +
	"\x05steps\x18\x06 \x03(\v2\x16.pqr.v1.FlowStepResultR\x05steps2\xdc\x01\n" +
	"\x0ePQRFlowService\x12:\n" +
	"\aRunFlow\x12\x16.pqr.v1.RunFlowRequest\x1a\x17.pqr.v1.RunFlowResponse\x12C\n" +
	"\n" +
	"GetFlowRun\x12\x19.pqr.v1.GetFlowRunRequest\x1a\x1a.pqr.v1.GetFlowRunResponse\x12I\n" +
	"\fListFlowRuns\x12\x1b.pqr.v1.ListFlowRunsRequest\x1a\x1c.pqr.v1.ListFlowRunsResponseB:Z8github.com/dfgiraldo/pqr-pipeline/gen/proto/pqr/v1;pqrv1b\x06proto3"

var (
	file_pqr_v1_pqr_proto_rawDescOnce sync.Once
	file_pqr_v1_pqr_proto_rawDescData []byte
)

func file_pqr_v1_pqr_proto_rawDescGZIP() []byte {
	file_pqr_v1_pqr_proto_rawDescOnce.Do(func() {
		file_pqr_v1_pqr_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_pqr_v1_pqr_proto_rawDesc), len(file_pqr_v1_pqr_proto_rawDesc)))
	})
	return file_pqr_v1_pqr_proto_rawDescData
}

var file_pqr_v1_pqr_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_pqr_v1_pqr_proto_goTypes = []any{
	(*RunFlowRequest)(nil),       // 0: pqr.v1.RunFlowRequest
	(*RunFlowResponse)(nil),      // 1: pqr.v1.RunFlowResponse
	(*GetFlowRunRequest)(nil),    // 2: pqr.v1.GetFlowRunRequest
	(*GetFlowRunResponse)(nil),   // 3: pqr.v1.GetFlowRunResponse
	(*ListFlowRunsRequest)(nil),  // 4: pqr.v1.ListFlowRunsRequest
	(*ListFlowRunsResponse)(nil), // 5: pqr.v1.ListFlowRunsResponse
	(*FlowStepResult)(nil),       // 6: pqr.v1.FlowStepResult
	(*FlowRun)(nil),              // 7: pqr.v1.FlowRun
}
var file_pqr_v1_pqr_proto_depIdxs = []int32{
	7, // 0: pqr.v1.RunFlowResponse.run:type_name -> pqr.v1.FlowRun
	7, // 1: pqr.v1.GetFlowRunResponse.run:type_name -> pqr.v1.FlowRun
	7, // 2: pqr.v1.ListFlowRunsResponse.runs:type_name -> pqr.v1.FlowRun
	6, // 3: pqr.v1.FlowRun.steps:type_name -> pqr.v1.FlowStepResult
	0, // 4: pqr.v1.PQRFlowService.RunFlow:input_type -> pqr.v1.RunFlowRequest
	2, // 5: pqr.v1.PQRFlowService.GetFlowRun:input_type -> pqr.v1.GetFlowRunRequest
	4, // 6: pqr.v1.PQRFlowService.ListFlowRuns:input_type -> pqr.v1.ListFlowRunsRequest
	1, // 7: pqr.v1.PQRFlowService.RunFlow:output_type -> pqr.v1.RunFlowResponse
	3, // 8: pqr.v1.PQRFlowService.GetFlowRun:output_type -> pqr.v1.GetFlowRunResponse
	5, // 9: pqr.v1.PQRFlowService.ListFlowRuns:output_type -> pqr.v1.ListFlowRunsResponse
	7, // [7:10] is the sub-list for method output_type
	4, // [4:7] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_pqr_v1_pqr_proto_init() }
func file_pqr_v1_pqr_proto_init() {
	if File_pqr_v1_pqr_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_pqr_v1_pqr_proto_rawDesc), len(file_pqr_v1_pqr_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_pqr_v1_pqr_proto_goTypes,
		DependencyIndexes: file_pqr_v1_pqr_proto_depIdxs,
		MessageInfos:      file_pqr_v1_pqr_proto_msgTypes,
	}.Build()
	File_pqr_v1_pqr_proto = out.File
	file_pqr_v1_pqr_proto_goTypes = nil
	file_pqr_v1_pqr_proto_depIdxs = nil
}
