// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.8
// 	protoc        (unknown)
// source: actuator.proto

package actuator

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

type TriggerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reason        string                 `protobuf:"bytes,1,opt,name=reason,proto3" json:"reason,omitempty"` // decision path that confirmed the emergency
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriggerRequest) Reset() {
	*x = TriggerRequest{}
	mi := &file_actuator_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerRequest) ProtoMessage() {}

func (x *TriggerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_actuator_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerRequest.ProtoReflect.Descriptor instead.
func (*TriggerRequest) Descriptor() ([]byte, []int) {
	return file_actuator_proto_rawDescGZIP(), []int{0}
}

func (x *TriggerRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type ResetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TicketId      string                 `protobuf:"bytes,1,opt,name=ticket_id,json=ticketId,proto3" json:"ticket_id,omitempty"` // ticket returned by the matching Trigger, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetRequest) Reset() {
	*x = ResetRequest{}
	mi := &file_actuator_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetRequest) ProtoMessage() {}

func (x *ResetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_actuator_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetRequest.ProtoReflect.Descriptor instead.
func (*ResetRequest) Descriptor() ([]byte, []int) {
	return file_actuator_proto_rawDescGZIP(), []int{1}
}

func (x *ResetRequest) GetTicketId() string {
	if x != nil {
		return x.TicketId
	}
	return ""
}

type StatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusRequest) Reset() {
	*x = StatusRequest{}
	mi := &file_actuator_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusRequest) ProtoMessage() {}

func (x *StatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_actuator_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusRequest.ProtoReflect.Descriptor instead.
func (*StatusRequest) Descriptor() ([]byte, []int) {
	return file_actuator_proto_rawDescGZIP(), []int{2}
}

type CommandResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	TicketId      string                 `protobuf:"bytes,3,opt,name=ticket_id,json=ticketId,proto3" json:"ticket_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommandResponse) Reset() {
	*x = CommandResponse{}
	mi := &file_actuator_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommandResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommandResponse) ProtoMessage() {}

func (x *CommandResponse) ProtoReflect() protoreflect.Message {
	mi := &file_actuator_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommandResponse.ProtoReflect.Descriptor instead.
func (*CommandResponse) Descriptor() ([]byte, []int) {
	return file_actuator_proto_rawDescGZIP(), []int{3}
}

func (x *CommandResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *CommandResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *CommandResponse) GetTicketId() string {
	if x != nil {
		return x.TicketId
	}
	return ""
}

type StatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AlarmOn       bool                   `protobuf:"varint,1,opt,name=alarm_on,json=alarmOn,proto3" json:"alarm_on,omitempty"`
	DoorUnlocked  bool                   `protobuf:"varint,2,opt,name=door_unlocked,json=doorUnlocked,proto3" json:"door_unlocked,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusResponse) Reset() {
	*x = StatusResponse{}
	mi := &file_actuator_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusResponse) ProtoMessage() {}

func (x *StatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_actuator_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusResponse.ProtoReflect.Descriptor instead.
func (*StatusResponse) Descriptor() ([]byte, []int) {
	return file_actuator_proto_rawDescGZIP(), []int{4}
}

func (x *StatusResponse) GetAlarmOn() bool {
	if x != nil {
		return x.AlarmOn
	}
	return false
}

func (x *StatusResponse) GetDoorUnlocked() bool {
	if x != nil {
		return x.DoorUnlocked
	}
	return false
}

var File_actuator_proto protoreflect.FileDescriptor

const file_actuator_proto_rawDesc = "" +
	"\n" +
	"\x0eactuator.proto\x12\bactuator\"(\n" +
	"\x0eTriggerRequest\x12\x16\n" +
	"\x06reason\x18\x01 \x01(\tR\x06reason\"+\n" +
	"\fResetRequest\x12\x1b\n" +
	"\tticket_id\x18\x01 \x01(\tR\bticketId\"\x0f\n" +
	"\rStatusRequest\"b\n" +
	"\x0fCommandResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12\x1b\n" +
	"\tticket_id\x18\x03 \x01(\tR\bticketId\"P\n" +
	"\x0eStatusResponse\x12\x19\n" +
	"\balarm_on\x18\x01 \x01(\bR\aalarmOn\x12#\n" +
	"\rdoor_unlocked\x18\x02 \x01(\bR\fdoorUnlocked2\xca\x01\n" +
	"\x0fActuatorService\x12>\n" +
	"\aTrigger\x12\x18.actuator.TriggerRequest\x1a\x19.actuator.CommandResponse\x12:\n" +
	"\x05Reset\x12\x16.actuator.ResetRequest\x1a\x19.actuator.CommandResponse\x12;\n" +
	"\x06Status\x12\x17.actuator.StatusRequest\x1a\x18.actuator.StatusResponseB3Z1github.com/eldersafe/gateway/grpc/gen/go/actuatorb\x06proto3"

var (
	file_actuator_proto_rawDescOnce sync.Once
	file_actuator_proto_rawDescData []byte
)

func file_actuator_proto_rawDescGZIP() []byte {
	file_actuator_proto_rawDescOnce.Do(func() {
		file_actuator_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_actuator_proto_rawDesc), len(file_actuator_proto_rawDesc)))
	})
	return file_actuator_proto_rawDescData
}

var file_actuator_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_actuator_proto_goTypes = []any{
	(*TriggerRequest)(nil),  // 0: actuator.TriggerRequest
	(*ResetRequest)(nil),    // 1: actuator.ResetRequest
	(*StatusRequest)(nil),   // 2: actuator.StatusRequest
	(*CommandResponse)(nil), // 3: actuator.CommandResponse
	(*StatusResponse)(nil),  // 4: actuator.StatusResponse
}
var file_actuator_proto_depIdxs = []int32{
	0, // 0: actuator.ActuatorService.Trigger:input_type -> actuator.TriggerRequest
	1, // 1: actuator.ActuatorService.Reset:input_type -> actuator.ResetRequest
	2, // 2: actuator.ActuatorService.Status:input_type -> actuator.StatusRequest
	3, // 3: actuator.ActuatorService.Trigger:output_type -> actuator.CommandResponse
	3, // 4: actuator.ActuatorService.Reset:output_type -> actuator.CommandResponse
	4, // 5: actuator.ActuatorService.Status:output_type -> actuator.StatusResponse
	3, // [3:6] is the sub-list for method output_type
	0, // [0:3] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_actuator_proto_init() }
func file_actuator_proto_init() {
	if File_actuator_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_actuator_proto_rawDesc), len(file_actuator_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_actuator_proto_goTypes,
		DependencyIndexes: file_actuator_proto_depIdxs,
		MessageInfos:      file_actuator_proto_msgTypes,
	}.Build()
	File_actuator_proto = out.File
	file_actuator_proto_goTypes = nil
	file_actuator_proto_depIdxs = nil
}
