// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	mapNSyΔ6RnffyJ8sQcGOfA6twΞΞ   = ord.NewMapSer[string, string](ord.String, ord.String)
	mapNUc3T3Xet6X1rX5J7viQygΞΞ   = ord.NewMapSer[string, float64](ord.String, varint.Float64)
	ptrq5H3H0HpcfSwTL7opΣkOpQΞΞ   = ord.NewPtrSer[float64](varint.Float64)
	sliceqQ1kfjc2AeTSAGeuSmtX5QΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var TriStateMUS = triStateMUS{}

type triStateMUS struct{}

func (s triStateMUS) Marshal(v TriState, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s triStateMUS) Unmarshal(bs []byte) (v TriState, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = TriState(tmp)
	return
}

func (s triStateMUS) Size(v TriState) (size int) {
	return varint.Int.Size(int(v))
}

func (s triStateMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var AssetMUS = assetMUS{}

type assetMUS struct{}

func (s assetMUS) Marshal(v Asset, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Ref, bs[n:])
	n += ord.String.Marshal(v.Name, bs[n:])
	n += varint.Int.Marshal(v.AssetTypeID, bs[n:])
	n += ord.String.Marshal(v.AssetTypeName, bs[n:])
	n += varint.Float64.Marshal(v.Price, bs[n:])
	n += TriStateMUS.Marshal(v.PetFriendly, bs[n:])
	n += ptrq5H3H0HpcfSwTL7opΣkOpQΞΞ.Marshal(v.Latitude, bs[n:])
	n += ptrq5H3H0HpcfSwTL7opΣkOpQΞΞ.Marshal(v.Longitude, bs[n:])
	n += ord.String.Marshal(v.Village, bs[n:])
	n += ord.String.Marshal(v.Road, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += varint.Int.Marshal(v.Bedrooms, bs[n:])
	n += varint.Int.Marshal(v.Bathrooms, bs[n:])
	n += mapNUc3T3Xet6X1rX5J7viQygΞΞ.Marshal(v.PoiDistances, bs[n:])
	n += mapNSyΔ6RnffyJ8sQcGOfA6twΞΞ.Marshal(v.PoiNames, bs[n:])
	n += varint.Float64.Marshal(v.LifestyleScore, bs[n:])
	n += sliceqQ1kfjc2AeTSAGeuSmtX5QΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s assetMUS) Unmarshal(bs []byte) (v Asset, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Ref, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AssetTypeID, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AssetTypeName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Price, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PetFriendly, n1, err = TriStateMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Latitude, n1, err = ptrq5H3H0HpcfSwTL7opΣkOpQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Longitude, n1, err = ptrq5H3H0HpcfSwTL7opΣkOpQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Village, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Road, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Bedrooms, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Bathrooms, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PoiDistances, n1, err = mapNUc3T3Xet6X1rX5J7viQygΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PoiNames, n1, err = mapNSyΔ6RnffyJ8sQcGOfA6twΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LifestyleScore, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceqQ1kfjc2AeTSAGeuSmtX5QΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s assetMUS) Size(v Asset) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Ref)
	size += ord.String.Size(v.Name)
	size += varint.Int.Size(v.AssetTypeID)
	size += ord.String.Size(v.AssetTypeName)
	size += varint.Float64.Size(v.Price)
	size += TriStateMUS.Size(v.PetFriendly)
	size += ptrq5H3H0HpcfSwTL7opΣkOpQΞΞ.Size(v.Latitude)
	size += ptrq5H3H0HpcfSwTL7opΣkOpQΞΞ.Size(v.Longitude)
	size += ord.String.Size(v.Village)
	size += ord.String.Size(v.Road)
	size += ord.String.Size(v.Description)
	size += varint.Int.Size(v.Bedrooms)
	size += varint.Int.Size(v.Bathrooms)
	size += mapNUc3T3Xet6X1rX5J7viQygΞΞ.Size(v.PoiDistances)
	size += mapNSyΔ6RnffyJ8sQcGOfA6twΞΞ.Size(v.PoiNames)
	size += varint.Float64.Size(v.LifestyleScore)
	size += sliceqQ1kfjc2AeTSAGeuSmtX5QΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s assetMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = TriStateMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ptrq5H3H0HpcfSwTL7opΣkOpQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ptrq5H3H0HpcfSwTL7opΣkOpQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapNUc3T3Xet6X1rX5J7viQygΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapNSyΔ6RnffyJ8sQcGOfA6twΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceqQ1kfjc2AeTSAGeuSmtX5QΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
