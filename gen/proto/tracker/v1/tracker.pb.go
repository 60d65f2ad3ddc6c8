// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: tracker/v1/tracker.proto

package trackerv1

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

type Job struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId          string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Company         string                 `protobuf:"bytes,3,opt,name=company,proto3" json:"company,omitempty"`
	Title           string                 `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	City            string                 `protobuf:"bytes,5,opt,name=city,proto3" json:"city,omitempty"`
	State           string                 `protobuf:"bytes,6,opt,name=state,proto3" json:"state,omitempty"`
	Country         string                 `protobuf:"bytes,7,opt,name=country,proto3" json:"country,omitempty"`
	AppliedAt       string                 `protobuf:"bytes,8,opt,name=applied_at,json=appliedAt,proto3" json:"applied_at,omitempty"` // YYYY-MM-DD, empty if unknown
	Status          string                 `protobuf:"bytes,9,opt,name=status,proto3" json:"status,omitempty"`
	IsDuplicate     bool                   `protobuf:"varint,10,opt,name=is_duplicate,json=isDuplicate,proto3" json:"is_duplicate,omitempty"`
	MergedIntoJobId string                 `protobuf:"bytes,11,opt,name=merged_into_job_id,json=mergedIntoJobId,proto3" json:"merged_into_job_id,omitempty"`
	PlatformCount   int32                  `protobuf:"varint,12,opt,name=platform_count,json=platformCount,proto3" json:"platform_count,omitempty"`
	Notes           string                 `protobuf:"bytes,13,opt,name=notes,proto3" json:"notes,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,14,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt       string                 `protobuf:"bytes,15,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{0}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Job) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *Job) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Job) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *Job) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Job) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *Job) GetAppliedAt() string {
	if x != nil {
		return x.AppliedAt
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetIsDuplicate() bool {
	if x != nil {
		return x.IsDuplicate
	}
	return false
}

func (x *Job) GetMergedIntoJobId() string {
	if x != nil {
		return x.MergedIntoJobId
	}
	return ""
}

func (x *Job) GetPlatformCount() int32 {
	if x != nil {
		return x.PlatformCount
	}
	return 0
}

func (x *Job) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Platform struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Platform      string                 `protobuf:"bytes,3,opt,name=platform,proto3" json:"platform,omitempty"`
	Url           string                 `protobuf:"bytes,4,opt,name=url,proto3" json:"url,omitempty"`
	ExternalId    string                 `protobuf:"bytes,5,opt,name=external_id,json=externalId,proto3" json:"external_id,omitempty"`
	Notes         string                 `protobuf:"bytes,6,opt,name=notes,proto3" json:"notes,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Platform) Reset() {
	*x = Platform{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Platform) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Platform) ProtoMessage() {}

func (x *Platform) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Platform.ProtoReflect.Descriptor instead.
func (*Platform) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{1}
}

func (x *Platform) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Platform) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *Platform) GetPlatform() string {
	if x != nil {
		return x.Platform
	}
	return ""
}

func (x *Platform) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *Platform) GetExternalId() string {
	if x != nil {
		return x.ExternalId
	}
	return ""
}

func (x *Platform) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Platform) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Suggestion struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId_1         string                 `protobuf:"bytes,2,opt,name=job_id_1,json=jobId1,proto3" json:"job_id_1,omitempty"`
	JobId_2         string                 `protobuf:"bytes,3,opt,name=job_id_2,json=jobId2,proto3" json:"job_id_2,omitempty"`
	CompanyScore    float64                `protobuf:"fixed64,4,opt,name=company_score,json=companyScore,proto3" json:"company_score,omitempty"`
	TitleScore      float64                `protobuf:"fixed64,5,opt,name=title_score,json=titleScore,proto3" json:"title_score,omitempty"`
	LocationScore   float64                `protobuf:"fixed64,6,opt,name=location_score,json=locationScore,proto3" json:"location_score,omitempty"`
	DateScore       float64                `protobuf:"fixed64,7,opt,name=date_score,json=dateScore,proto3" json:"date_score,omitempty"`
	SimilarityScore float64                `protobuf:"fixed64,8,opt,name=similarity_score,json=similarityScore,proto3" json:"similarity_score,omitempty"`
	Status          string                 `protobuf:"bytes,9,opt,name=status,proto3" json:"status,omitempty"`
	ResolvedAt      string                 `protobuf:"bytes,10,opt,name=resolved_at,json=resolvedAt,proto3" json:"resolved_at,omitempty"` // RFC 3339, empty while pending
	Job_1           *Job                   `protobuf:"bytes,11,opt,name=job_1,json=job1,proto3" json:"job_1,omitempty"`
	Job_2           *Job                   `protobuf:"bytes,12,opt,name=job_2,json=job2,proto3" json:"job_2,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Suggestion) Reset() {
	*x = Suggestion{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Suggestion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Suggestion) ProtoMessage() {}

func (x *Suggestion) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Suggestion.ProtoReflect.Descriptor instead.
func (*Suggestion) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{2}
}

func (x *Suggestion) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Suggestion) GetJobId_1() string {
	if x != nil {
		return x.JobId_1
	}
	return ""
}

func (x *Suggestion) GetJobId_2() string {
	if x != nil {
		return x.JobId_2
	}
	return ""
}

func (x *Suggestion) GetCompanyScore() float64 {
	if x != nil {
		return x.CompanyScore
	}
	return 0
}

func (x *Suggestion) GetTitleScore() float64 {
	if x != nil {
		return x.TitleScore
	}
	return 0
}

func (x *Suggestion) GetLocationScore() float64 {
	if x != nil {
		return x.LocationScore
	}
	return 0
}

func (x *Suggestion) GetDateScore() float64 {
	if x != nil {
		return x.DateScore
	}
	return 0
}

func (x *Suggestion) GetSimilarityScore() float64 {
	if x != nil {
		return x.SimilarityScore
	}
	return 0
}

func (x *Suggestion) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Suggestion) GetResolvedAt() string {
	if x != nil {
		return x.ResolvedAt
	}
	return ""
}

func (x *Suggestion) GetJob_1() *Job {
	if x != nil {
		return x.Job_1
	}
	return nil
}

func (x *Suggestion) GetJob_2() *Job {
	if x != nil {
		return x.Job_2
	}
	return nil
}

type ScoredJob struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Job             *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	CompanyScore    float64                `protobuf:"fixed64,2,opt,name=company_score,json=companyScore,proto3" json:"company_score,omitempty"`
	TitleScore      float64                `protobuf:"fixed64,3,opt,name=title_score,json=titleScore,proto3" json:"title_score,omitempty"`
	LocationScore   float64                `protobuf:"fixed64,4,opt,name=location_score,json=locationScore,proto3" json:"location_score,omitempty"`
	DateScore       float64                `protobuf:"fixed64,5,opt,name=date_score,json=dateScore,proto3" json:"date_score,omitempty"`
	SimilarityScore float64                `protobuf:"fixed64,6,opt,name=similarity_score,json=similarityScore,proto3" json:"similarity_score,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ScoredJob) Reset() {
	*x = ScoredJob{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScoredJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScoredJob) ProtoMessage() {}

func (x *ScoredJob) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScoredJob.ProtoReflect.Descriptor instead.
func (*ScoredJob) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{3}
}

func (x *ScoredJob) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *ScoredJob) GetCompanyScore() float64 {
	if x != nil {
		return x.CompanyScore
	}
	return 0
}

func (x *ScoredJob) GetTitleScore() float64 {
	if x != nil {
		return x.TitleScore
	}
	return 0
}

func (x *ScoredJob) GetLocationScore() float64 {
	if x != nil {
		return x.LocationScore
	}
	return 0
}

func (x *ScoredJob) GetDateScore() float64 {
	if x != nil {
		return x.DateScore
	}
	return 0
}

func (x *ScoredJob) GetSimilarityScore() float64 {
	if x != nil {
		return x.SimilarityScore
	}
	return 0
}

type Contact struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Company       string                 `protobuf:"bytes,4,opt,name=company,proto3" json:"company,omitempty"`
	Email         string                 `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	Role          string                 `protobuf:"bytes,6,opt,name=role,proto3" json:"role,omitempty"`
	Notes         string                 `protobuf:"bytes,7,opt,name=notes,proto3" json:"notes,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt     string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Contact) Reset() {
	*x = Contact{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contact) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contact) ProtoMessage() {}

func (x *Contact) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contact.ProtoReflect.Descriptor instead.
func (*Contact) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{4}
}

func (x *Contact) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contact) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Contact) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Contact) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *Contact) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Contact) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *Contact) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Contact) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Contact) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type User struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt     string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{5}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *User) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *User) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserRequest) Reset() {
	*x = CreateUserRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserRequest) ProtoMessage() {}

func (x *CreateUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserRequest.ProtoReflect.Descriptor instead.
func (*CreateUserRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{6}
}

func (x *CreateUserRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateUserRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserResponse) Reset() {
	*x = CreateUserResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserResponse) ProtoMessage() {}

func (x *CreateUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserResponse.ProtoReflect.Descriptor instead.
func (*CreateUserResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{7}
}

func (x *CreateUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type GetUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserRequest) Reset() {
	*x = GetUserRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserRequest) ProtoMessage() {}

func (x *GetUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserRequest.ProtoReflect.Descriptor instead.
func (*GetUserRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{8}
}

func (x *GetUserRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserResponse) Reset() {
	*x = GetUserResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserResponse) ProtoMessage() {}

func (x *GetUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserResponse.ProtoReflect.Descriptor instead.
func (*GetUserResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{9}
}

func (x *GetUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type CreateJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Company       string                 `protobuf:"bytes,2,opt,name=company,proto3" json:"company,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	City          string                 `protobuf:"bytes,4,opt,name=city,proto3" json:"city,omitempty"`
	State         string                 `protobuf:"bytes,5,opt,name=state,proto3" json:"state,omitempty"`
	Country       string                 `protobuf:"bytes,6,opt,name=country,proto3" json:"country,omitempty"`
	AppliedAt     string                 `protobuf:"bytes,7,opt,name=applied_at,json=appliedAt,proto3" json:"applied_at,omitempty"` // YYYY-MM-DD
	Status        string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	Notes         string                 `protobuf:"bytes,9,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobRequest) Reset() {
	*x = CreateJobRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobRequest) ProtoMessage() {}

func (x *CreateJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobRequest.ProtoReflect.Descriptor instead.
func (*CreateJobRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{10}
}

func (x *CreateJobRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CreateJobRequest) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *CreateJobRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreateJobRequest) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *CreateJobRequest) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *CreateJobRequest) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *CreateJobRequest) GetAppliedAt() string {
	if x != nil {
		return x.AppliedAt
	}
	return ""
}

func (x *CreateJobRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *CreateJobRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type CreateJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobResponse) Reset() {
	*x = CreateJobResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobResponse) ProtoMessage() {}

func (x *CreateJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobResponse.ProtoReflect.Descriptor instead.
func (*CreateJobResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{11}
}

func (x *CreateJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{12}
}

func (x *GetJobRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{13}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{14}
}

func (x *ListJobsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListJobsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListJobsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{15}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type UpdateJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Company       *string                `protobuf:"bytes,3,opt,name=company,proto3,oneof" json:"company,omitempty"`
	Title         *string                `protobuf:"bytes,4,opt,name=title,proto3,oneof" json:"title,omitempty"`
	City          *string                `protobuf:"bytes,5,opt,name=city,proto3,oneof" json:"city,omitempty"`
	State         *string                `protobuf:"bytes,6,opt,name=state,proto3,oneof" json:"state,omitempty"`
	Country       *string                `protobuf:"bytes,7,opt,name=country,proto3,oneof" json:"country,omitempty"`
	AppliedAt     *string                `protobuf:"bytes,8,opt,name=applied_at,json=appliedAt,proto3,oneof" json:"applied_at,omitempty"` // YYYY-MM-DD
	Status        *string                `protobuf:"bytes,9,opt,name=status,proto3,oneof" json:"status,omitempty"`
	Notes         *string                `protobuf:"bytes,10,opt,name=notes,proto3,oneof" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateJobRequest) Reset() {
	*x = UpdateJobRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateJobRequest) ProtoMessage() {}

func (x *UpdateJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateJobRequest.ProtoReflect.Descriptor instead.
func (*UpdateJobRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{16}
}

func (x *UpdateJobRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UpdateJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *UpdateJobRequest) GetCompany() string {
	if x != nil && x.Company != nil {
		return *x.Company
	}
	return ""
}

func (x *UpdateJobRequest) GetTitle() string {
	if x != nil && x.Title != nil {
		return *x.Title
	}
	return ""
}

func (x *UpdateJobRequest) GetCity() string {
	if x != nil && x.City != nil {
		return *x.City
	}
	return ""
}

func (x *UpdateJobRequest) GetState() string {
	if x != nil && x.State != nil {
		return *x.State
	}
	return ""
}

func (x *UpdateJobRequest) GetCountry() string {
	if x != nil && x.Country != nil {
		return *x.Country
	}
	return ""
}

func (x *UpdateJobRequest) GetAppliedAt() string {
	if x != nil && x.AppliedAt != nil {
		return *x.AppliedAt
	}
	return ""
}

func (x *UpdateJobRequest) GetStatus() string {
	if x != nil && x.Status != nil {
		return *x.Status
	}
	return ""
}

func (x *UpdateJobRequest) GetNotes() string {
	if x != nil && x.Notes != nil {
		return *x.Notes
	}
	return ""
}

type UpdateJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateJobResponse) Reset() {
	*x = UpdateJobResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateJobResponse) ProtoMessage() {}

func (x *UpdateJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateJobResponse.ProtoReflect.Descriptor instead.
func (*UpdateJobResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{17}
}

func (x *UpdateJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type AttachPlatformRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Platform      string                 `protobuf:"bytes,3,opt,name=platform,proto3" json:"platform,omitempty"`
	Url           string                 `protobuf:"bytes,4,opt,name=url,proto3" json:"url,omitempty"`
	ExternalId    string                 `protobuf:"bytes,5,opt,name=external_id,json=externalId,proto3" json:"external_id,omitempty"`
	Notes         string                 `protobuf:"bytes,6,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachPlatformRequest) Reset() {
	*x = AttachPlatformRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachPlatformRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachPlatformRequest) ProtoMessage() {}

func (x *AttachPlatformRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachPlatformRequest.ProtoReflect.Descriptor instead.
func (*AttachPlatformRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{18}
}

func (x *AttachPlatformRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AttachPlatformRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *AttachPlatformRequest) GetPlatform() string {
	if x != nil {
		return x.Platform
	}
	return ""
}

func (x *AttachPlatformRequest) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *AttachPlatformRequest) GetExternalId() string {
	if x != nil {
		return x.ExternalId
	}
	return ""
}

func (x *AttachPlatformRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type AttachPlatformResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Platform      *Platform              `protobuf:"bytes,1,opt,name=platform,proto3" json:"platform,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachPlatformResponse) Reset() {
	*x = AttachPlatformResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachPlatformResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachPlatformResponse) ProtoMessage() {}

func (x *AttachPlatformResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachPlatformResponse.ProtoReflect.Descriptor instead.
func (*AttachPlatformResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{19}
}

func (x *AttachPlatformResponse) GetPlatform() *Platform {
	if x != nil {
		return x.Platform
	}
	return nil
}

type ListPlatformsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPlatformsRequest) Reset() {
	*x = ListPlatformsRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPlatformsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPlatformsRequest) ProtoMessage() {}

func (x *ListPlatformsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPlatformsRequest.ProtoReflect.Descriptor instead.
func (*ListPlatformsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{20}
}

func (x *ListPlatformsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListPlatformsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ListPlatformsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Platforms     []*Platform            `protobuf:"bytes,1,rep,name=platforms,proto3" json:"platforms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPlatformsResponse) Reset() {
	*x = ListPlatformsResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPlatformsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPlatformsResponse) ProtoMessage() {}

func (x *ListPlatformsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPlatformsResponse.ProtoReflect.Descriptor instead.
func (*ListPlatformsResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{21}
}

func (x *ListPlatformsResponse) GetPlatforms() []*Platform {
	if x != nil {
		return x.Platforms
	}
	return nil
}

type ImportJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Payload       []byte                 `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"` // JSON array of job rows
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportJobsRequest) Reset() {
	*x = ImportJobsRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportJobsRequest) ProtoMessage() {}

func (x *ImportJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportJobsRequest.ProtoReflect.Descriptor instead.
func (*ImportJobsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{22}
}

func (x *ImportJobsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ImportJobsRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

type ImportJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Imported      int32                  `protobuf:"varint,1,opt,name=imported,proto3" json:"imported,omitempty"`
	Errors        []*ImportRowError      `protobuf:"bytes,2,rep,name=errors,proto3" json:"errors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportJobsResponse) Reset() {
	*x = ImportJobsResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportJobsResponse) ProtoMessage() {}

func (x *ImportJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportJobsResponse.ProtoReflect.Descriptor instead.
func (*ImportJobsResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{23}
}

func (x *ImportJobsResponse) GetImported() int32 {
	if x != nil {
		return x.Imported
	}
	return 0
}

func (x *ImportJobsResponse) GetErrors() []*ImportRowError {
	if x != nil {
		return x.Errors
	}
	return nil
}

type ImportRowError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Index         int32                  `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportRowError) Reset() {
	*x = ImportRowError{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportRowError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportRowError) ProtoMessage() {}

func (x *ImportRowError) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportRowError.ProtoReflect.Descriptor instead.
func (*ImportRowError) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{24}
}

func (x *ImportRowError) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

func (x *ImportRowError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type ExportJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsRequest) Reset() {
	*x = ExportJobsRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsRequest) ProtoMessage() {}

func (x *ExportJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsRequest.ProtoReflect.Descriptor instead.
func (*ExportJobsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{25}
}

func (x *ExportJobsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ExportJobsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportJobsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsResponse) Reset() {
	*x = ExportJobsResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsResponse) ProtoMessage() {}

func (x *ExportJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsResponse.ProtoReflect.Descriptor instead.
func (*ExportJobsResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{26}
}

func (x *ExportJobsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type FindDuplicatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FindDuplicatesRequest) Reset() {
	*x = FindDuplicatesRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FindDuplicatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FindDuplicatesRequest) ProtoMessage() {}

func (x *FindDuplicatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FindDuplicatesRequest.ProtoReflect.Descriptor instead.
func (*FindDuplicatesRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{27}
}

func (x *FindDuplicatesRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *FindDuplicatesRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type FindDuplicatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Matches       []*ScoredJob           `protobuf:"bytes,1,rep,name=matches,proto3" json:"matches,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FindDuplicatesResponse) Reset() {
	*x = FindDuplicatesResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FindDuplicatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FindDuplicatesResponse) ProtoMessage() {}

func (x *FindDuplicatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FindDuplicatesResponse.ProtoReflect.Descriptor instead.
func (*FindDuplicatesResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{28}
}

func (x *FindDuplicatesResponse) GetMatches() []*ScoredJob {
	if x != nil {
		return x.Matches
	}
	return nil
}

type ListSuggestionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSuggestionsRequest) Reset() {
	*x = ListSuggestionsRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSuggestionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSuggestionsRequest) ProtoMessage() {}

func (x *ListSuggestionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSuggestionsRequest.ProtoReflect.Descriptor instead.
func (*ListSuggestionsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{29}
}

func (x *ListSuggestionsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ListSuggestionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Suggestions   []*Suggestion          `protobuf:"bytes,1,rep,name=suggestions,proto3" json:"suggestions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSuggestionsResponse) Reset() {
	*x = ListSuggestionsResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSuggestionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSuggestionsResponse) ProtoMessage() {}

func (x *ListSuggestionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSuggestionsResponse.ProtoReflect.Descriptor instead.
func (*ListSuggestionsResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{30}
}

func (x *ListSuggestionsResponse) GetSuggestions() []*Suggestion {
	if x != nil {
		return x.Suggestions
	}
	return nil
}

type DismissSuggestionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	SuggestionId  string                 `protobuf:"bytes,2,opt,name=suggestion_id,json=suggestionId,proto3" json:"suggestion_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DismissSuggestionRequest) Reset() {
	*x = DismissSuggestionRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DismissSuggestionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DismissSuggestionRequest) ProtoMessage() {}

func (x *DismissSuggestionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DismissSuggestionRequest.ProtoReflect.Descriptor instead.
func (*DismissSuggestionRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{31}
}

func (x *DismissSuggestionRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *DismissSuggestionRequest) GetSuggestionId() string {
	if x != nil {
		return x.SuggestionId
	}
	return ""
}

type DismissSuggestionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DismissSuggestionResponse) Reset() {
	*x = DismissSuggestionResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DismissSuggestionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DismissSuggestionResponse) ProtoMessage() {}

func (x *DismissSuggestionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DismissSuggestionResponse.ProtoReflect.Descriptor instead.
func (*DismissSuggestionResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{32}
}

type MergeJobsRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	UserId          string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	MasterJobId     string                 `protobuf:"bytes,2,opt,name=master_job_id,json=masterJobId,proto3" json:"master_job_id,omitempty"`
	DuplicateJobIds []string               `protobuf:"bytes,3,rep,name=duplicate_job_ids,json=duplicateJobIds,proto3" json:"duplicate_job_ids,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *MergeJobsRequest) Reset() {
	*x = MergeJobsRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MergeJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MergeJobsRequest) ProtoMessage() {}

func (x *MergeJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MergeJobsRequest.ProtoReflect.Descriptor instead.
func (*MergeJobsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{33}
}

func (x *MergeJobsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *MergeJobsRequest) GetMasterJobId() string {
	if x != nil {
		return x.MasterJobId
	}
	return ""
}

func (x *MergeJobsRequest) GetDuplicateJobIds() []string {
	if x != nil {
		return x.DuplicateJobIds
	}
	return nil
}

type MergeJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MasterJobId   string                 `protobuf:"bytes,1,opt,name=master_job_id,json=masterJobId,proto3" json:"master_job_id,omitempty"`
	MergedJobIds  []string               `protobuf:"bytes,2,rep,name=merged_job_ids,json=mergedJobIds,proto3" json:"merged_job_ids,omitempty"`
	PlatformCount int32                  `protobuf:"varint,3,opt,name=platform_count,json=platformCount,proto3" json:"platform_count,omitempty"`
	MergedAt      string                 `protobuf:"bytes,4,opt,name=merged_at,json=mergedAt,proto3" json:"merged_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MergeJobsResponse) Reset() {
	*x = MergeJobsResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MergeJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MergeJobsResponse) ProtoMessage() {}

func (x *MergeJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MergeJobsResponse.ProtoReflect.Descriptor instead.
func (*MergeJobsResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{34}
}

func (x *MergeJobsResponse) GetMasterJobId() string {
	if x != nil {
		return x.MasterJobId
	}
	return ""
}

func (x *MergeJobsResponse) GetMergedJobIds() []string {
	if x != nil {
		return x.MergedJobIds
	}
	return nil
}

func (x *MergeJobsResponse) GetPlatformCount() int32 {
	if x != nil {
		return x.PlatformCount
	}
	return 0
}

func (x *MergeJobsResponse) GetMergedAt() string {
	if x != nil {
		return x.MergedAt
	}
	return ""
}

type CreateContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Company       string                 `protobuf:"bytes,3,opt,name=company,proto3" json:"company,omitempty"`
	Email         string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	Role          string                 `protobuf:"bytes,5,opt,name=role,proto3" json:"role,omitempty"`
	Notes         string                 `protobuf:"bytes,6,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateContactRequest) Reset() {
	*x = CreateContactRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateContactRequest) ProtoMessage() {}

func (x *CreateContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateContactRequest.ProtoReflect.Descriptor instead.
func (*CreateContactRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{35}
}

func (x *CreateContactRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CreateContactRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateContactRequest) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *CreateContactRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateContactRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *CreateContactRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type CreateContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contact       *Contact               `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateContactResponse) Reset() {
	*x = CreateContactResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateContactResponse) ProtoMessage() {}

func (x *CreateContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateContactResponse.ProtoReflect.Descriptor instead.
func (*CreateContactResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{36}
}

func (x *CreateContactResponse) GetContact() *Contact {
	if x != nil {
		return x.Contact
	}
	return nil
}

type ListContactsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContactsRequest) Reset() {
	*x = ListContactsRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContactsRequest) ProtoMessage() {}

func (x *ListContactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContactsRequest.ProtoReflect.Descriptor instead.
func (*ListContactsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{37}
}

func (x *ListContactsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ListContactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contacts      []*Contact             `protobuf:"bytes,1,rep,name=contacts,proto3" json:"contacts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContactsResponse) Reset() {
	*x = ListContactsResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContactsResponse) ProtoMessage() {}

func (x *ListContactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContactsResponse.ProtoReflect.Descriptor instead.
func (*ListContactsResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{38}
}

func (x *ListContactsResponse) GetContacts() []*Contact {
	if x != nil {
		return x.Contacts
	}
	return nil
}

type UpdateContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ContactId     string                 `protobuf:"bytes,2,opt,name=contact_id,json=contactId,proto3" json:"contact_id,omitempty"`
	Name          *string                `protobuf:"bytes,3,opt,name=name,proto3,oneof" json:"name,omitempty"`
	Company       *string                `protobuf:"bytes,4,opt,name=company,proto3,oneof" json:"company,omitempty"`
	Email         *string                `protobuf:"bytes,5,opt,name=email,proto3,oneof" json:"email,omitempty"`
	Role          *string                `protobuf:"bytes,6,opt,name=role,proto3,oneof" json:"role,omitempty"`
	Notes         *string                `protobuf:"bytes,7,opt,name=notes,proto3,oneof" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateContactRequest) Reset() {
	*x = UpdateContactRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateContactRequest) ProtoMessage() {}

func (x *UpdateContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateContactRequest.ProtoReflect.Descriptor instead.
func (*UpdateContactRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{39}
}

func (x *UpdateContactRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UpdateContactRequest) GetContactId() string {
	if x != nil {
		return x.ContactId
	}
	return ""
}

func (x *UpdateContactRequest) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *UpdateContactRequest) GetCompany() string {
	if x != nil && x.Company != nil {
		return *x.Company
	}
	return ""
}

func (x *UpdateContactRequest) GetEmail() string {
	if x != nil && x.Email != nil {
		return *x.Email
	}
	return ""
}

func (x *UpdateContactRequest) GetRole() string {
	if x != nil && x.Role != nil {
		return *x.Role
	}
	return ""
}

func (x *UpdateContactRequest) GetNotes() string {
	if x != nil && x.Notes != nil {
		return *x.Notes
	}
	return ""
}

type UpdateContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contact       *Contact               `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateContactResponse) Reset() {
	*x = UpdateContactResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateContactResponse) ProtoMessage() {}

func (x *UpdateContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateContactResponse.ProtoReflect.Descriptor instead.
func (*UpdateContactResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{40}
}

func (x *UpdateContactResponse) GetContact() *Contact {
	if x != nil {
		return x.Contact
	}
	return nil
}

type DeleteContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ContactId     string                 `protobuf:"bytes,2,opt,name=contact_id,json=contactId,proto3" json:"contact_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContactRequest) Reset() {
	*x = DeleteContactRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContactRequest) ProtoMessage() {}

func (x *DeleteContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContactRequest.ProtoReflect.Descriptor instead.
func (*DeleteContactRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{41}
}

func (x *DeleteContactRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *DeleteContactRequest) GetContactId() string {
	if x != nil {
		return x.ContactId
	}
	return ""
}

type DeleteContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContactResponse) Reset() {
	*x = DeleteContactResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContactResponse) ProtoMessage() {}

func (x *DeleteContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContactResponse.ProtoReflect.Descriptor instead.
func (*DeleteContactResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{42}
}

var File_tracker_v1_tracker_proto protoreflect.FileDescriptor

const file_tracker_v1_tracker_proto_rawDesc = "" +
	"\n" +
	"\x18tracker/v1/tracker.proto\x12\n" +
	"tracker.v1\"\xa4\x03\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x18\n" +
	"\acompany\x18\x03 \x01(\tR\acompany\x12\x14\n" +
	"\x05title\x18\x04 \x01(\tR\x05title\x12\x12\n" +
	"\x04city\x18\x05 \x01(\tR\x04city\x12\x14\n" +
	"\x05state\x18\x06 \x01(\tR\x05state\x12\x18\n" +
	"\acountry\x18\a \x01(\tR\acountry\x12\x1d\n" +
	"\n" +
	"applied_at\x18\b \x01(\tR\tappliedAt\x12\x16\n" +
	"\x06status\x18\t \x01(\tR\x06status\x12!\n" +
	"\fis_duplicate\x18\n" +
	" \x01(\bR\visDuplicate\x12+\n" +
	"\x12merged_into_job_id\x18\v \x01(\tR\x0fmergedIntoJobId\x12%\n" +
	"\x0eplatform_count\x18\f \x01(\x05R\rplatformCount\x12\x14\n" +
	"\x05notes\x18\r \x01(\tR\x05notes\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0e \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0f \x01(\tR\tupdatedAt\"\xb5\x01\n" +
	"\bPlatform\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x1a\n" +
	"\bplatform\x18\x03 \x01(\tR\bplatform\x12\x10\n" +
	"\x03url\x18\x04 \x01(\tR\x03url\x12\x1f\n" +
	"\vexternal_id\x18\x05 \x01(\tR\n" +
	"externalId\x12\x14\n" +
	"\x05notes\x18\x06 \x01(\tR\x05notes\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\"\x8c\x03\n" +
	"\n" +
	"Suggestion\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x18\n" +
	"\bjob_id_1\x18\x02 \x01(\tR\x06jobId1\x12\x18\n" +
	"\bjob_id_2\x18\x03 \x01(\tR\x06jobId2\x12#\n" +
	"\rcompany_score\x18\x04 \x01(\x01R\fcompanyScore\x12\x1f\n" +
	"\vtitle_score\x18\x05 \x01(\x01R\n" +
	"titleScore\x12%\n" +
	"\x0elocation_score\x18\x06 \x01(\x01R\rlocationScore\x12\x1d\n" +
	"\n" +
	"date_score\x18\a \x01(\x01R\tdateScore\x12)\n" +
	"\x10similarity_score\x18\b \x01(\x01R\x0fsimilarityScore\x12\x16\n" +
	"\x06status\x18\t \x01(\tR\x06status\x12\x1f\n" +
	"\vresolved_at\x18\n" +
	" \x01(\tR\n" +
	"resolvedAt\x12$\n" +
	"\x05job_1\x18\v \x01(\v2\x0f.tracker.v1.JobR\x04job1\x12$\n" +
	"\x05job_2\x18\f \x01(\v2\x0f.tracker.v1.JobR\x04job2\"\xe5\x01\n" +
	"\tScoredJob\x12!\n" +
	"\x03job\x18\x01 \x01(\v2\x0f.tracker.v1.JobR\x03job\x12#\n" +
	"\rcompany_score\x18\x02 \x01(\x01R\fcompanyScore\x12\x1f\n" +
	"\vtitle_score\x18\x03 \x01(\x01R\n" +
	"titleScore\x12%\n" +
	"\x0elocation_score\x18\x04 \x01(\x01R\rlocationScore\x12\x1d\n" +
	"\n" +
	"date_score\x18\x05 \x01(\x01R\tdateScore\x12)\n" +
	"\x10similarity_score\x18\x06 \x01(\x01R\x0fsimilarityScore\"\xde\x01\n" +
	"\aContact\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x18\n" +
	"\acompany\x18\x04 \x01(\tR\acompany\x12\x14\n" +
	"\x05email\x18\x05 \x01(\tR\x05email\x12\x12\n" +
	"\x04role\x18\x06 \x01(\tR\x04role\x12\x14\n" +
	"\x05notes\x18\a \x01(\tR\x05notes\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"~\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\"=\n" +
	"\x11CreateUserRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\":\n" +
	"\x12CreateUserResponse\x12$\n" +
	"\x04user\x18\x01 \x01(\v2\x10.tracker.v1.UserR\x04user\")\n" +
	"\x0eGetUserRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"7\n" +
	"\x0fGetUserResponse\x12$\n" +
	"\x04user\x18\x01 \x01(\v2\x10.tracker.v1.UserR\x04user\"\xec\x01\n" +
	"\x10CreateJobRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x18\n" +
	"\acompany\x18\x02 \x01(\tR\acompany\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x12\n" +
	"\x04city\x18\x04 \x01(\tR\x04city\x12\x14\n" +
	"\x05state\x18\x05 \x01(\tR\x05state\x12\x18\n" +
	"\acountry\x18\x06 \x01(\tR\acountry\x12\x1d\n" +
	"\n" +
	"applied_at\x18\a \x01(\tR\tappliedAt\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x12\x14\n" +
	"\x05notes\x18\t \x01(\tR\x05notes\"6\n" +
	"\x11CreateJobResponse\x12!\n" +
	"\x03job\x18\x01 \x01(\v2\x0f.tracker.v1.JobR\x03job\"?\n" +
	"\rGetJobRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\"3\n" +
	"\x0eGetJobResponse\x12!\n" +
	"\x03job\x18\x01 \x01(\v2\x0f.tracker.v1.JobR\x03job\"`\n" +
	"\x0fListJobsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"7\n" +
	"\x10ListJobsResponse\x12#\n" +
	"\x04jobs\x18\x01 \x03(\v2\x0f.tracker.v1.JobR\x04jobs\"\x84\x03\n" +
	"\x10UpdateJobRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x1d\n" +
	"\acompany\x18\x03 \x01(\tH\x00R\acompany\x88\x01\x01\x12\x19\n" +
	"\x05title\x18\x04 \x01(\tH\x01R\x05title\x88\x01\x01\x12\x17\n" +
	"\x04city\x18\x05 \x01(\tH\x02R\x04city\x88\x01\x01\x12\x19\n" +
	"\x05state\x18\x06 \x01(\tH\x03R\x05state\x88\x01\x01\x12\x1d\n" +
	"\acountry\x18\a \x01(\tH\x04R\acountry\x88\x01\x01\x12\"\n" +
	"\n" +
	"applied_at\x18\b \x01(\tH\x05R\tappliedAt\x88\x01\x01\x12\x1b\n" +
	"\x06status\x18\t \x01(\tH\x06R\x06status\x88\x01\x01\x12\x19\n" +
	"\x05notes\x18\n" +
	" \x01(\tH\aR\x05notes\x88\x01\x01B\n" +
	"\n" +
	"\b_companyB\b\n" +
	"\x06_titleB\a\n" +
	"\x05_cityB\b\n" +
	"\x06_stateB\n" +
	"\n" +
	"\b_countryB\r\n" +
	"\v_applied_atB\t\n" +
	"\a_statusB\b\n" +
	"\x06_notes\"6\n" +
	"\x11UpdateJobResponse\x12!\n" +
	"\x03job\x18\x01 \x01(\v2\x0f.tracker.v1.JobR\x03job\"\xac\x01\n" +
	"\x15AttachPlatformRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x1a\n" +
	"\bplatform\x18\x03 \x01(\tR\bplatform\x12\x10\n" +
	"\x03url\x18\x04 \x01(\tR\x03url\x12\x1f\n" +
	"\vexternal_id\x18\x05 \x01(\tR\n" +
	"externalId\x12\x14\n" +
	"\x05notes\x18\x06 \x01(\tR\x05notes\"J\n" +
	"\x16AttachPlatformResponse\x120\n" +
	"\bplatform\x18\x01 \x01(\v2\x14.tracker.v1.PlatformR\bplatform\"F\n" +
	"\x14ListPlatformsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\"K\n" +
	"\x15ListPlatformsResponse\x122\n" +
	"\tplatforms\x18\x01 \x03(\v2\x14.tracker.v1.PlatformR\tplatforms\"F\n" +
	"\x11ImportJobsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x18\n" +
	"\apayload\x18\x02 \x01(\fR\apayload\"d\n" +
	"\x12ImportJobsResponse\x12\x1a\n" +
	"\bimported\x18\x01 \x01(\x05R\bimported\x122\n" +
	"\x06errors\x18\x02 \x03(\v2\x1a.tracker.v1.ImportRowErrorR\x06errors\"@\n" +
	"\x0eImportRowError\x12\x14\n" +
	"\x05index\x18\x01 \x01(\x05R\x05index\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"b\n" +
	"\x11ExportJobsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"(\n" +
	"\x12ExportJobsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"G\n" +
	"\x15FindDuplicatesRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\"I\n" +
	"\x16FindDuplicatesResponse\x12/\n" +
	"\amatches\x18\x01 \x03(\v2\x15.tracker.v1.ScoredJobR\amatches\"1\n" +
	"\x16ListSuggestionsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"S\n" +
	"\x17ListSuggestionsResponse\x128\n" +
	"\vsuggestions\x18\x01 \x03(\v2\x16.tracker.v1.SuggestionR\vsuggestions\"X\n" +
	"\x18DismissSuggestionRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12#\n" +
	"\rsuggestion_id\x18\x02 \x01(\tR\fsuggestionId\"\x1b\n" +
	"\x19DismissSuggestionResponse\"{\n" +
	"\x10MergeJobsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\"\n" +
	"\rmaster_job_id\x18\x02 \x01(\tR\vmasterJobId\x12*\n" +
	"\x11duplicate_job_ids\x18\x03 \x03(\tR\x0fduplicateJobIds\"\xa1\x01\n" +
	"\x11MergeJobsResponse\x12\"\n" +
	"\rmaster_job_id\x18\x01 \x01(\tR\vmasterJobId\x12$\n" +
	"\x0emerged_job_ids\x18\x02 \x03(\tR\fmergedJobIds\x12%\n" +
	"\x0eplatform_count\x18\x03 \x01(\x05R\rplatformCount\x12\x1b\n" +
	"\tmerged_at\x18\x04 \x01(\tR\bmergedAt\"\x9d\x01\n" +
	"\x14CreateContactRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\acompany\x18\x03 \x01(\tR\acompany\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x12\x12\n" +
	"\x04role\x18\x05 \x01(\tR\x04role\x12\x14\n" +
	"\x05notes\x18\x06 \x01(\tR\x05notes\"F\n" +
	"\x15CreateContactResponse\x12-\n" +
	"\acontact\x18\x01 \x01(\v2\x13.tracker.v1.ContactR\acontact\".\n" +
	"\x13ListContactsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"G\n" +
	"\x14ListContactsResponse\x12/\n" +
	"\bcontacts\x18\x01 \x03(\v2\x13.tracker.v1.ContactR\bcontacts\"\x87\x02\n" +
	"\x14UpdateContactRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"contact_id\x18\x02 \x01(\tR\tcontactId\x12\x17\n" +
	"\x04name\x18\x03 \x01(\tH\x00R\x04name\x88\x01\x01\x12\x1d\n" +
	"\acompany\x18\x04 \x01(\tH\x01R\acompany\x88\x01\x01\x12\x19\n" +
	"\x05email\x18\x05 \x01(\tH\x02R\x05email\x88\x01\x01\x12\x17\n" +
	"\x04role\x18\x06 \x01(\tH\x03R\x04role\x88\x01\x01\x12\x19\n" +
	"\x05notes\x18\a \x01(\tH\x04R\x05notes\x88\x01\x01B\a\n" +
	"\x05_nameB\n" +
	"\n" +
	"\b_companyB\b\n" +
	"\x06_emailB\a\n" +
	"\x05_roleB\b\n" +
	"\x06_notes\"F\n" +
	"\x15UpdateContactResponse\x12-\n" +
	"\acontact\x18\x01 \x01(\v2\x13.tracker.v1.ContactR\acontact\"N\n" +
	"\x14DeleteContactRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"contact_id\x18\x02 \x01(\tR\tcontactId\"\x17\n" +
	"\x15DeleteContactResponse2\xf2\x04\n" +
	"\vJobsService\x12H\n" +
	"\tCreateJob\x12\x1c.tracker.v1.CreateJobRequest\x1a\x1d.tracker.v1.CreateJobResponse\x12?\n" +
	"\x06GetJob\x12\x19.tracker.v1.GetJobRequest\x1a\x1a.tracker.v1.GetJobResponse\x12E\n" +
	"\bListJobs\x12\x1b.tracker.v1.ListJobsRequest\x1a\x1c.tracker.v1.ListJobsResponse\x12H\n" +
	"\tUpdateJob\x12\x1c.tracker.v1.UpdateJobRequest\x1a\x1d.tracker.v1.UpdateJobResponse\x12W\n" +
	"\x0eAttachPlatform\x12!.tracker.v1.AttachPlatformRequest\x1a\".tracker.v1.AttachPlatformResponse\x12T\n" +
	"\rListPlatforms\x12 .tracker.v1.ListPlatformsRequest\x1a!.tracker.v1.ListPlatformsResponse\x12K\n" +
	"\n" +
	"ImportJobs\x12\x1d.tracker.v1.ImportJobsRequest\x1a\x1e.tracker.v1.ImportJobsResponse\x12K\n" +
	"\n" +
	"ExportJobs\x12\x1d.tracker.v1.ExportJobsRequest\x1a\x1e.tracker.v1.ExportJobsResponse2\xef\x02\n" +
	"\fDedupService\x12W\n" +
	"\x0eFindDuplicates\x12!.tracker.v1.FindDuplicatesRequest\x1a\".tracker.v1.FindDuplicatesResponse\x12Z\n" +
	"\x0fListSuggestions\x12\".tracker.v1.ListSuggestionsRequest\x1a#.tracker.v1.ListSuggestionsResponse\x12`\n" +
	"\x11DismissSuggestion\x12$.tracker.v1.DismissSuggestionRequest\x1a%.tracker.v1.DismissSuggestionResponse\x12H\n" +
	"\tMergeJobs\x12\x1c.tracker.v1.MergeJobsRequest\x1a\x1d.tracker.v1.MergeJobsResponse2\x9f\x01\n" +
	"\fUsersService\x12K\n" +
	"\n" +
	"CreateUser\x12\x1d.tracker.v1.CreateUserRequest\x1a\x1e.tracker.v1.CreateUserResponse\x12B\n" +
	"\aGetUser\x12\x1a.tracker.v1.GetUserRequest\x1a\x1b.tracker.v1.GetUserResponse2\xe6\x02\n" +
	"\x0fContactsService\x12T\n" +
	"\rCreateContact\x12 .tracker.v1.CreateContactRequest\x1a!.tracker.v1.CreateContactResponse\x12Q\n" +
	"\fListContacts\x12\x1f.tracker.v1.ListContactsRequest\x1a .tracker.v1.ListContactsResponse\x12T\n" +
	"\rUpdateContact\x12 .tracker.v1.UpdateContactRequest\x1a!.tracker.v1.UpdateContactResponse\x12T\n" +
	"\rDeleteContact\x12 .tracker.v1.DeleteContactRequest\x1a!.tracker.v1.DeleteContactResponseBAZ?github.com/adeolu-ojo/applytrack/gen/proto/tracker/v1;trackerv1b\x06proto3"

var (
	file_tracker_v1_tracker_proto_rawDescOnce sync.Once
	file_tracker_v1_tracker_proto_rawDescData []byte
)

func file_tracker_v1_tracker_proto_rawDescGZIP() []byte {
	file_tracker_v1_tracker_proto_rawDescOnce.Do(func() {
		file_tracker_v1_tracker_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_tracker_v1_tracker_proto_rawDesc), len(file_tracker_v1_tracker_proto_rawDesc)))
	})
	return file_tracker_v1_tracker_proto_rawDescData
}

var file_tracker_v1_tracker_proto_msgTypes = make([]protoimpl.MessageInfo, 43)
var file_tracker_v1_tracker_proto_goTypes = []any{
	(*Job)(nil),                       // 0: tracker.v1.Job
	(*Platform)(nil),                  // 1: tracker.v1.Platform
	(*Suggestion)(nil),                // 2: tracker.v1.Suggestion
	(*ScoredJob)(nil),                 // 3: tracker.v1.ScoredJob
	(*Contact)(nil),                   // 4: tracker.v1.Contact
	(*User)(nil),                      // 5: tracker.v1.User
	(*CreateUserRequest)(nil),         // 6: tracker.v1.CreateUserRequest
	(*CreateUserResponse)(nil),        // 7: tracker.v1.CreateUserResponse
	(*GetUserRequest)(nil),            // 8: tracker.v1.GetUserRequest
	(*GetUserResponse)(nil),           // 9: tracker.v1.GetUserResponse
	(*CreateJobRequest)(nil),          // 10: tracker.v1.CreateJobRequest
	(*CreateJobResponse)(nil),         // 11: tracker.v1.CreateJobResponse
	(*GetJobRequest)(nil),             // 12: tracker.v1.GetJobRequest
	(*GetJobResponse)(nil),            // 13: tracker.v1.GetJobResponse
	(*ListJobsRequest)(nil),           // 14: tracker.v1.ListJobsRequest
	(*ListJobsResponse)(nil),          // 15: tracker.v1.ListJobsResponse
	(*UpdateJobRequest)(nil),          // 16: tracker.v1.UpdateJobRequest
	(*UpdateJobResponse)(nil),         // 17: tracker.v1.UpdateJobResponse
	(*AttachPlatformRequest)(nil),     // 18: tracker.v1.AttachPlatformRequest
	(*AttachPlatformResponse)(nil),    // 19: tracker.v1.AttachPlatformResponse
	(*ListPlatformsRequest)(nil),      // 20: tracker.v1.ListPlatformsRequest
	(*ListPlatformsResponse)(nil),     // 21: tracker.v1.ListPlatformsResponse
	(*ImportJobsRequest)(nil),         // 22: tracker.v1.ImportJobsRequest
	(*ImportJobsResponse)(nil),        // 23: tracker.v1.ImportJobsResponse
	(*ImportRowError)(nil),            // 24: tracker.v1.ImportRowError
	(*ExportJobsRequest)(nil),         // 25: tracker.v1.ExportJobsRequest
	(*ExportJobsResponse)(nil),        // 26: tracker.v1.ExportJobsResponse
	(*FindDuplicatesRequest)(nil),     // 27: tracker.v1.FindDuplicatesRequest
	(*FindDuplicatesResponse)(nil),    // 28: tracker.v1.FindDuplicatesResponse
	(*ListSuggestionsRequest)(nil),    // 29: tracker.v1.ListSuggestionsRequest
	(*ListSuggestionsResponse)(nil),   // 30: tracker.v1.ListSuggestionsResponse
	(*DismissSuggestionRequest)(nil),  // 31: tracker.v1.DismissSuggestionRequest
	(*DismissSuggestionResponse)(nil), // 32: tracker.v1.DismissSuggestionResponse
	(*MergeJobsRequest)(nil),          // 33: tracker.v1.MergeJobsRequest
	(*MergeJobsResponse)(nil),         // 34: tracker.v1.MergeJobsResponse
	(*CreateContactRequest)(nil),      // 35: tracker.v1.CreateContactRequest
	(*CreateContactResponse)(nil),     // 36: tracker.v1.CreateContactResponse
	(*ListContactsRequest)(nil),       // 37: tracker.v1.ListContactsRequest
	(*ListContactsResponse)(nil),      // 38: tracker.v1.ListContactsResponse
	(*UpdateContactRequest)(nil),      // 39: tracker.v1.UpdateContactRequest
	(*UpdateContactResponse)(nil),     // 40: tracker.v1.UpdateContactResponse
	(*DeleteContactRequest)(nil),      // 41: tracker.v1.DeleteContactRequest
	(*DeleteContactResponse)(nil),     // 42: tracker.v1.DeleteContactResponse
}
var file_tracker_v1_tracker_proto_depIdxs = []int32{
	0,  // 0: tracker.v1.Suggestion.job_1:type_name -> tracker.v1.Job
	0,  // 1: tracker.v1.Suggestion.job_2:type_name -> tracker.v1.Job
	0,  // 2: tracker.v1.ScoredJob.job:type_name -> tracker.v1.Job
	5,  // 3: tracker.v1.CreateUserResponse.user:type_name -> tracker.v1.User
	5,  // 4: tracker.v1.GetUserResponse.user:type_name -> tracker.v1.User
	0,  // 5: tracker.v1.CreateJobResponse.job:type_name -> tracker.v1.Job
	0,  // 6: tracker.v1.GetJobResponse.job:type_name -> tracker.v1.Job
	0,  // 7: tracker.v1.ListJobsResponse.jobs:type_name -> tracker.v1.Job
	0,  // 8: tracker.v1.UpdateJobResponse.job:type_name -> tracker.v1.Job
	1,  // 9: tracker.v1.AttachPlatformResponse.platform:type_name -> tracker.v1.Platform
	1,  // 10: tracker.v1.ListPlatformsResponse.platforms:type_name -> tracker.v1.Platform
	24, // 11: tracker.v1.ImportJobsResponse.errors:type_name -> tracker.v1.ImportRowError
	3,  // 12: tracker.v1.FindDuplicatesResponse.matches:type_name -> tracker.v1.ScoredJob
	2,  // 13: tracker.v1.ListSuggestionsResponse.suggestions:type_name -> tracker.v1.Suggestion
	4,  // 14: tracker.v1.CreateContactResponse.contact:type_name -> tracker.v1.Contact
	4,  // 15: tracker.v1.ListContactsResponse.contacts:type_name -> tracker.v1.Contact
	4,  // 16: tracker.v1.UpdateContactResponse.contact:type_name -> tracker.v1.Contact
	10, // 17: tracker.v1.JobsService.CreateJob:input_type -> tracker.v1.CreateJobRequest
	12, // 18: tracker.v1.JobsService.GetJob:input_type -> tracker.v1.GetJobRequest
	14, // 19: tracker.v1.JobsService.ListJobs:input_type -> tracker.v1.ListJobsRequest
	16, // 20: tracker.v1.JobsService.UpdateJob:input_type -> tracker.v1.UpdateJobRequest
	18, // 21: tracker.v1.JobsService.AttachPlatform:input_type -> tracker.v1.AttachPlatformRequest
	20, // 22: tracker.v1.JobsService.ListPlatforms:input_type -> tracker.v1.ListPlatformsRequest
	22, // 23: tracker.v1.JobsService.ImportJobs:input_type -> tracker.v1.ImportJobsRequest
	25, // 24: tracker.v1.JobsService.ExportJobs:input_type -> tracker.v1.ExportJobsRequest
	27, // 25: tracker.v1.DedupService.FindDuplicates:input_type -> tracker.v1.FindDuplicatesRequest
	29, // 26: tracker.v1.DedupService.ListSuggestions:input_type -> tracker.v1.ListSuggestionsRequest
	31, // 27: tracker.v1.DedupService.DismissSuggestion:input_type -> tracker.v1.DismissSuggestionRequest
	33, // 28: tracker.v1.DedupService.MergeJobs:input_type -> tracker.v1.MergeJobsRequest
	6,  // 29: tracker.v1.UsersService.CreateUser:input_type -> tracker.v1.CreateUserRequest
	8,  // 30: tracker.v1.UsersService.GetUser:input_type -> tracker.v1.GetUserRequest
	35, // 31: tracker.v1.ContactsService.CreateContact:input_type -> tracker.v1.CreateContactRequest
	37, // 32: tracker.v1.ContactsService.ListContacts:input_type -> tracker.v1.ListContactsRequest
	39, // 33: tracker.v1.ContactsService.UpdateContact:input_type -> tracker.v1.UpdateContactRequest
	41, // 34: tracker.v1.ContactsService.DeleteContact:input_type -> tracker.v1.DeleteContactRequest
	11, // 35: tracker.v1.JobsService.CreateJob:output_type -> tracker.v1.CreateJobResponse
	13, // 36: tracker.v1.JobsService.GetJob:output_type -> tracker.v1.GetJobResponse
	15, // 37: tracker.v1.JobsService.ListJobs:output_type -> tracker.v1.ListJobsResponse
	17, // 38: tracker.v1.JobsService.UpdateJob:output_type -> tracker.v1.UpdateJobResponse
	19, // 39: tracker.v1.JobsService.AttachPlatform:output_type -> tracker.v1.AttachPlatformResponse
	21, // 40: tracker.v1.JobsService.ListPlatforms:output_type -> tracker.v1.ListPlatformsResponse
	23, // 41: tracker.v1.JobsService.ImportJobs:output_type -> tracker.v1.ImportJobsResponse
	26, // 42: tracker.v1.JobsService.ExportJobs:output_type -> tracker.v1.ExportJobsResponse
	28, // 43: tracker.v1.DedupService.FindDuplicates:output_type -> tracker.v1.FindDuplicatesResponse
	30, // 44: tracker.v1.DedupService.ListSuggestions:output_type -> tracker.v1.ListSuggestionsResponse
	32, // 45: tracker.v1.DedupService.DismissSuggestion:output_type -> tracker.v1.DismissSuggestionResponse
	34, // 46: tracker.v1.DedupService.MergeJobs:output_type -> tracker.v1.MergeJobsResponse
	7,  // 47: tracker.v1.UsersService.CreateUser:output_type -> tracker.v1.CreateUserResponse
	9,  // 48: tracker.v1.UsersService.GetUser:output_type -> tracker.v1.GetUserResponse
	36, // 49: tracker.v1.ContactsService.CreateContact:output_type -> tracker.v1.CreateContactResponse
	38, // 50: tracker.v1.ContactsService.ListContacts:output_type -> tracker.v1.ListContactsResponse
	40, // 51: tracker.v1.ContactsService.UpdateContact:output_type -> tracker.v1.UpdateContactResponse
	42, // 52: tracker.v1.ContactsService.DeleteContact:output_type -> tracker.v1.DeleteContactResponse
	35, // [35:53] is the sub-list for method output_type
	17, // [17:35] is the sub-list for method input_type
	17, // [17:17] is the sub-list for extension type_name
	17, // [17:17] is the sub-list for extension extendee
	0,  // [0:17] is the sub-list for field type_name
}

func init() { file_tracker_v1_tracker_proto_init() }
func file_tracker_v1_tracker_proto_init() {
	if File_tracker_v1_tracker_proto != nil {
		return
	}
	file_tracker_v1_tracker_proto_msgTypes[16].OneofWrappers = []any{}
	file_tracker_v1_tracker_proto_msgTypes[39].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_tracker_v1_tracker_proto_rawDesc), len(file_tracker_v1_tracker_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   43,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_tracker_v1_tracker_proto_goTypes,
		DependencyIndexes: file_tracker_v1_tracker_proto_depIdxs,
		MessageInfos:      file_tracker_v1_tracker_proto_msgTypes,
	}.Build()
	File_tracker_v1_tracker_proto = out.File
	file_tracker_v1_tracker_proto_goTypes = nil
	file_tracker_v1_tracker_proto_depIdxs = nil
}
